package domain

// Record is a typed entry of the descriptor graph.
type Record interface {
	Kind() Kind
}

// PackageReference points at a remote Swift package repository.
type PackageReference struct {
	RepositoryURL string
	Requirement   Requirement
	// Attributes holds the keys this type does not model.
	Attributes map[string]any
}

// Kind implements Record.
func (*PackageReference) Kind() Kind { return KindPackageReference }

// ProductDependency names one product of a PackageReference.
type ProductDependency struct {
	Package     ObjectID
	ProductName string
	Attributes  map[string]any
}

// Kind implements Record.
func (*ProductDependency) Kind() Kind { return KindProductDependency }

// BuildTarget is a native target of the project.
type BuildTarget struct {
	Name                       string
	BuildPhases                []ObjectID
	PackageProductDependencies []ObjectID
	Attributes                 map[string]any
}

// Kind implements Record.
func (*BuildTarget) Kind() Kind { return KindNativeTarget }

// HasProductDependency reports whether id is already listed in the target's package products.
func (t *BuildTarget) HasProductDependency(id ObjectID) bool {
	return containsID(t.PackageProductDependencies, id)
}

// LinkPhase is the frameworks build phase of a target.
type LinkPhase struct {
	Files      []ObjectID
	Attributes map[string]any
}

// Kind implements Record.
func (*LinkPhase) Kind() Kind { return KindFrameworksPhase }

// BuildFileEntry is a file linked by a LinkPhase. Package products set ProductRef.
type BuildFileEntry struct {
	ProductRef ObjectID
	// ProductName is derived from the referenced ProductDependency and never serialized.
	ProductName string
	Attributes  map[string]any
}

// Kind implements Record.
func (*BuildFileEntry) Kind() Kind { return KindBuildFile }

// ProjectRoot is the PBXProject record named by the document's rootObject.
type ProjectRoot struct {
	PackageReferences []ObjectID
	Targets           []ObjectID
	Attributes        map[string]any
}

// Kind implements Record.
func (*ProjectRoot) Kind() Kind { return KindProject }

// HasPackageReference reports whether id is registered in the root's reference list.
func (p *ProjectRoot) HasPackageReference(id ObjectID) bool {
	return containsID(p.PackageReferences, id)
}

// OpaqueRecord is any record the graph does not interpret. It is written back unchanged.
type OpaqueRecord struct {
	Isa        Kind
	Attributes map[string]any
}

// Kind implements Record.
func (r *OpaqueRecord) Kind() Kind { return r.Isa }

func containsID(ids []ObjectID, id ObjectID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
