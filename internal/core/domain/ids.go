package domain

// ObjectID is the opaque identifier under which a record is stored in the project descriptor.
type ObjectID string

// String returns the identifier text.
func (id ObjectID) String() string { return string(id) }

// Kind is the isa discriminator of a descriptor record.
type Kind string

// Record kinds the graph models explicitly. Every other isa is kept as an OpaqueRecord.
const (
	KindProject            Kind = "PBXProject"
	KindNativeTarget       Kind = "PBXNativeTarget"
	KindFrameworksPhase    Kind = "PBXFrameworksBuildPhase"
	KindBuildFile          Kind = "PBXBuildFile"
	KindPackageReference   Kind = "XCRemoteSwiftPackageReference"
	KindProductDependency  Kind = "XCSwiftPackageProductDependency"
	KindUnknown            Kind = ""
	buildFileCommentSuffix      = " in Frameworks"
)

// BuildFileLabel is the human readable label Xcode shows for a linked product.
func BuildFileLabel(productName string) string {
	return productName + buildFileCommentSuffix
}
