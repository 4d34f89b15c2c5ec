package spm_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/core/ports/mocks"
	"go.trai.ch/spmlink/internal/engine/spm"
	"go.uber.org/mock/gomock"
)

const (
	mlxURL   = "https://github.com/ml-explore/mlx-swift"
	jinjaURL = "https://github.com/maiqingqiang/Jinja"
)

type spmTestMocks struct {
	ids       *mocks.MockIDGenerator
	logger    *mocks.MockLogger
	telemetry *mocks.MockTelemetry
}

// setupMocks returns permissive mocks. The id generator hands out sequential identifiers.
func setupMocks(t *testing.T) spmTestMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := spmTestMocks{
		ids:       mocks.NewMockIDGenerator(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
	}

	next := 0
	m.ids.EXPECT().NewID(gomock.Any()).DoAndReturn(func(string) domain.ObjectID {
		next++
		return domain.ObjectID(fmt.Sprintf("ID%022d", next))
	}).AnyTimes()

	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	m.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).Return(vertex).AnyTimes()

	return m
}

func (m spmTestMocks) deps() spm.Deps {
	return spm.Deps{IDs: m.ids, Logger: m.logger, Telemetry: m.telemetry}
}

// newProjectGraph builds a descriptor with an app target, a pod target and a target that has
// no frameworks build phase.
func newProjectGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph("ROOT")
	records := map[domain.ObjectID]domain.Record{
		"ROOT": &domain.ProjectRoot{Targets: []domain.ObjectID{"T_APP", "T_POD", "T_BARE"}},
		"T_APP": &domain.BuildTarget{
			Name:        "example",
			BuildPhases: []domain.ObjectID{"P_APP_SRC", "P_APP_FW"},
		},
		"P_APP_SRC": &domain.OpaqueRecord{Isa: "PBXSourcesBuildPhase"},
		"P_APP_FW":  &domain.LinkPhase{},
		"T_POD": &domain.BuildTarget{
			Name:        "react-native-fastvlm-ios",
			BuildPhases: []domain.ObjectID{"P_POD_FW"},
		},
		"P_POD_FW": &domain.LinkPhase{},
		"T_BARE": &domain.BuildTarget{
			Name:        "bare",
			BuildPhases: []domain.ObjectID{"P_APP_SRC"},
		},
	}
	for id, r := range records {
		require.NoError(t, g.Insert(id, r))
	}
	return g
}

func coordinate(repo, product, version string) domain.PackageCoordinate {
	return domain.PackageCoordinate{
		RepositoryURL: repo,
		ProductName:   product,
		Requirement:   domain.UpToNextMajor(version),
	}
}

// shape summarizes the graph independently of identifier values.
type shape struct {
	References        map[string]int
	Products          map[string]int
	Links             map[string]int
	RootReferences    int
	TargetProducts    map[string]int
	Records           int
	OrphanReferences  int
	DanglingBuildFile int
}

func graphShape(t *testing.T, g *domain.Graph) shape {
	t.Helper()
	s := shape{
		References:     map[string]int{},
		Products:       map[string]int{},
		Links:          map[string]int{},
		TargetProducts: map[string]int{},
		Records:        g.Len(),
	}
	root, err := g.Root()
	require.NoError(t, err)
	s.RootReferences = len(root.PackageReferences)

	for id, ref := range domain.RecordsOfType[*domain.PackageReference](g) {
		s.References[ref.RepositoryURL]++
		if !root.HasPackageReference(id) {
			s.OrphanReferences++
		}
	}
	for _, p := range domain.RecordsOfType[*domain.ProductDependency](g) {
		ref, ok := domain.Lookup[*domain.PackageReference](g, p.Package)
		require.True(t, ok, "product %s points at a missing reference", p.ProductName)
		s.Products[ref.RepositoryURL+"#"+p.ProductName]++
	}
	for _, target := range domain.RecordsOfType[*domain.BuildTarget](g) {
		for _, phaseID := range target.BuildPhases {
			phase, ok := domain.Lookup[*domain.LinkPhase](g, phaseID)
			if !ok {
				continue
			}
			for _, fileID := range phase.Files {
				entry, ok := domain.Lookup[*domain.BuildFileEntry](g, fileID)
				if !ok {
					s.DanglingBuildFile++
					continue
				}
				s.Links[target.Name+"#"+entry.ProductName]++
			}
		}
		s.TargetProducts[target.Name] = len(target.PackageProductDependencies)
	}
	return s
}
