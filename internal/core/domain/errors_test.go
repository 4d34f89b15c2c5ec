package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestTag_KeepsSentinelIdentity(t *testing.T) {
	err := zerr.With(domain.Tag(domain.ErrDuplicateObject), "id", "ABC")
	err = zerr.With(err, "kind", "PBXBuildFile")

	assert.ErrorIs(t, err, domain.ErrDuplicateObject)
	assert.NotErrorIs(t, err, domain.ErrMissingRootObject)
	assert.Equal(t, domain.ErrDuplicateObject.Error(), err.Error())
}

func TestWrapCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := zerr.With(domain.WrapCause(domain.ErrScriptWriteFailed, cause), "path", "ios/Podfile")

	assert.ErrorIs(t, err, domain.ErrScriptWriteFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to write build script: permission denied", err.Error())

	assert.ErrorIs(t, domain.WrapCause(domain.ErrManifestInvalid, nil), domain.ErrManifestInvalid)
}

func TestErrorKinds(t *testing.T) {
	structural := domain.Structural(zerr.With(domain.Tag(domain.ErrMissingRootObject), "root_object", "R"))
	assert.True(t, domain.IsStructural(structural))
	assert.False(t, domain.IsIO(structural))
	assert.ErrorIs(t, structural, domain.ErrMissingRootObject)

	io := domain.NewIOError("ios/Podfile", domain.WrapCause(domain.ErrScriptReadFailed, errors.New("EIO")))
	assert.True(t, domain.IsIO(io))
	assert.False(t, domain.IsStructural(io))
	assert.ErrorIs(t, io, domain.ErrScriptReadFailed)

	var ioErr *domain.IOError
	assert.True(t, errors.As(io, &ioErr))
	assert.Equal(t, "ios/Podfile", ioErr.Path)

	assert.NoError(t, domain.Structural(nil))
	assert.NoError(t, domain.NewIOError("x", nil))
}
