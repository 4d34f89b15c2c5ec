// Package pbxproj reads and writes Xcode project descriptors.
//
// A descriptor is an OpenStep property list with an "objects" table keyed by 24-character
// identifiers and a "rootObject" naming the PBXProject record. Decode maps the record kinds
// the linker cares about onto typed domain records and keeps everything else opaque. Every
// attribute of a decoded record survives Encode, including keys the domain type does not model.
//
// Comments in the source descriptor are not preserved. Xcode regenerates them on the next save.
package pbxproj

import (
	"bytes"
	"maps"

	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/zerr"
	"howett.net/plist"
)

// Header is the encoding marker Xcode writes on the first line of every descriptor.
const Header = "// !$*UTF8*$!\n"

// Descriptor keys.
const (
	keyObjects    = "objects"
	keyRootObject = "rootObject"
	keyIsa        = "isa"

	keyName                       = "name"
	keyBuildPhases                = "buildPhases"
	keyPackageProductDependencies = "packageProductDependencies"
	keyFiles                      = "files"
	keyProductRef                 = "productRef"
	keyRepositoryURL              = "repositoryURL"
	keyRequirement                = "requirement"
	keyPackage                    = "package"
	keyProductName                = "productName"
	keyPackageReferences          = "packageReferences"
	keyTargets                    = "targets"
)

// Decode parses descriptor text into a graph. A document without a rootObject decodes into a
// graph whose Root lookup fails, so the caller sees a structural error rather than a parse error.
func Decode(data []byte) (*domain.Graph, error) {
	var doc map[string]any
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, domain.WrapCause(domain.ErrProjectParseFailed, err)
	}
	if doc == nil {
		return nil, zerr.With(domain.Tag(domain.ErrProjectParseFailed), "reason", "document is not a dictionary")
	}

	rootID, _ := doc[keyRootObject].(string)
	graph := domain.NewGraph(domain.ObjectID(rootID))
	for key, value := range doc {
		if key == keyObjects || key == keyRootObject {
			continue
		}
		graph.Header[key] = value
	}

	objects, ok := doc[keyObjects].(map[string]any)
	if !ok && doc[keyObjects] != nil {
		return nil, zerr.With(domain.Tag(domain.ErrProjectParseFailed), "reason", "objects is not a dictionary")
	}
	for id, raw := range objects {
		attrs, ok := raw.(map[string]any)
		if !ok {
			return nil, zerr.With(zerr.With(domain.Tag(domain.ErrProjectParseFailed), "reason", "object is not a dictionary"), "id", id)
		}
		if err := graph.Insert(domain.ObjectID(id), decodeRecord(attrs)); err != nil {
			return nil, err
		}
	}

	resolveProductNames(graph)
	return graph, nil
}

func decodeRecord(attrs map[string]any) domain.Record {
	isa, _ := attrs[keyIsa].(string)
	rest := maps.Clone(attrs)
	delete(rest, keyIsa)

	switch domain.Kind(isa) {
	case domain.KindProject:
		return &domain.ProjectRoot{
			PackageReferences: idList(attrs[keyPackageReferences]),
			Targets:           idList(attrs[keyTargets]),
			Attributes:        rest,
		}
	case domain.KindNativeTarget:
		return &domain.BuildTarget{
			Name:                       str(attrs[keyName]),
			BuildPhases:                idList(attrs[keyBuildPhases]),
			PackageProductDependencies: idList(attrs[keyPackageProductDependencies]),
			Attributes:                 rest,
		}
	case domain.KindFrameworksPhase:
		return &domain.LinkPhase{
			Files:      idList(attrs[keyFiles]),
			Attributes: rest,
		}
	case domain.KindBuildFile:
		return &domain.BuildFileEntry{
			ProductRef: domain.ObjectID(str(attrs[keyProductRef])),
			Attributes: rest,
		}
	case domain.KindPackageReference:
		fields, _ := attrs[keyRequirement].(map[string]any)
		return &domain.PackageReference{
			RepositoryURL: str(attrs[keyRepositoryURL]),
			Requirement:   domain.RequirementFromFields(fields),
			Attributes:    rest,
		}
	case domain.KindProductDependency:
		return &domain.ProductDependency{
			Package:     domain.ObjectID(str(attrs[keyPackage])),
			ProductName: str(attrs[keyProductName]),
			Attributes:  rest,
		}
	default:
		return &domain.OpaqueRecord{Isa: domain.Kind(isa), Attributes: rest}
	}
}

// resolveProductNames fills BuildFileEntry.ProductName from the product dependency it references.
func resolveProductNames(graph *domain.Graph) {
	for _, entry := range domain.RecordsOfType[*domain.BuildFileEntry](graph) {
		if entry.ProductRef == "" {
			continue
		}
		if dep, ok := domain.Lookup[*domain.ProductDependency](graph, entry.ProductRef); ok {
			entry.ProductName = dep.ProductName
		}
	}
}

// Encode serializes graph as descriptor text.
func Encode(graph *domain.Graph) ([]byte, error) {
	objects := make(map[string]any, graph.Len())
	for _, id := range graph.IDs() {
		record, _ := graph.Get(id)
		objects[id.String()] = encodeRecord(record)
	}

	doc := maps.Clone(graph.Header)
	if doc == nil {
		doc = make(map[string]any)
	}
	doc[keyObjects] = objects
	if graph.RootID() != "" {
		doc[keyRootObject] = graph.RootID().String()
	}

	body, err := plist.MarshalIndent(doc, plist.OpenStepFormat, "\t")
	if err != nil {
		return nil, domain.WrapCause(domain.ErrProjectEncodeFailed, err)
	}

	var buf bytes.Buffer
	buf.Grow(len(Header) + len(body) + 1)
	buf.WriteString(Header)
	buf.Write(body)
	if !bytes.HasSuffix(body, []byte("\n")) {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func encodeRecord(record domain.Record) map[string]any {
	var attrs map[string]any
	switch r := record.(type) {
	case *domain.ProjectRoot:
		attrs = maps.Clone(r.Attributes)
		attrs = setIDList(attrs, keyPackageReferences, r.PackageReferences)
		attrs = setIDList(attrs, keyTargets, r.Targets)
	case *domain.BuildTarget:
		attrs = maps.Clone(r.Attributes)
		attrs = setString(attrs, keyName, r.Name)
		attrs = setIDList(attrs, keyBuildPhases, r.BuildPhases)
		attrs = setIDList(attrs, keyPackageProductDependencies, r.PackageProductDependencies)
	case *domain.LinkPhase:
		attrs = maps.Clone(r.Attributes)
		attrs = setIDList(attrs, keyFiles, r.Files)
	case *domain.BuildFileEntry:
		attrs = maps.Clone(r.Attributes)
		attrs = setString(attrs, keyProductRef, r.ProductRef.String())
	case *domain.PackageReference:
		attrs = maps.Clone(r.Attributes)
		attrs = setString(attrs, keyRepositoryURL, r.RepositoryURL)
		if r.Requirement.Kind != "" {
			attrs[keyRequirement] = r.Requirement.Fields()
		}
	case *domain.ProductDependency:
		attrs = maps.Clone(r.Attributes)
		attrs = setString(attrs, keyPackage, r.Package.String())
		attrs = setString(attrs, keyProductName, r.ProductName)
	case *domain.OpaqueRecord:
		attrs = maps.Clone(r.Attributes)
	}
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs[keyIsa] = string(record.Kind())
	return attrs
}

// setIDList writes ids under key when the list is non-empty or the key was already present.
func setIDList(attrs map[string]any, key string, ids []domain.ObjectID) map[string]any {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	if _, present := attrs[key]; !present && len(ids) == 0 {
		return attrs
	}
	list := make([]any, len(ids))
	for i, id := range ids {
		list[i] = id.String()
	}
	attrs[key] = list
	return attrs
}

func setString(attrs map[string]any, key, value string) map[string]any {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	if value != "" {
		attrs[key] = value
	}
	return attrs
}

func idList(raw any) []domain.ObjectID {
	items, _ := raw.([]any)
	if len(items) == 0 {
		return nil
	}
	ids := make([]domain.ObjectID, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			ids = append(ids, domain.ObjectID(s))
		}
	}
	return ids
}

func str(raw any) string {
	s, _ := raw.(string)
	return s
}
