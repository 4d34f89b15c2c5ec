package domain

import "fmt"

// LinkOutcome is the result of linking one product into one target.
type LinkOutcome int

const (
	// LinkSkipped means the target or its link phase was not found.
	LinkSkipped LinkOutcome = iota
	// LinkPresent means the target already linked the product.
	LinkPresent
	// LinkAdded means a new build file entry was appended.
	LinkAdded
)

func (o LinkOutcome) String() string {
	switch o {
	case LinkSkipped:
		return "skipped"
	case LinkPresent:
		return "present"
	case LinkAdded:
		return "linked"
	default:
		return fmt.Sprintf("LinkOutcome(%d)", int(o))
	}
}

// Lookup warning reasons.
const (
	ReasonTargetNotFound = "target not found"
	ReasonNoLinkPhase    = "no frameworks build phase"
)

// LookupWarning records a target that could not receive a link. It never aborts a pass.
type LookupWarning struct {
	Target  string
	Product string
	Reason  string
}

func (w LookupWarning) String() string {
	return fmt.Sprintf("%s: %s (product %s)", w.Target, w.Reason, w.Product)
}

// PodfileOutcome is the result of the build-script patch step.
type PodfileOutcome int

const (
	// PodfileNotRun means the step was not requested.
	PodfileNotRun PodfileOutcome = iota
	// PodfileMissing means the script does not exist yet and was left alone.
	PodfileMissing
	// PodfileAlreadyPatched means the marker was already present.
	PodfileAlreadyPatched
	// PodfilePatched means the script content changed.
	PodfilePatched
)

func (o PodfileOutcome) String() string {
	switch o {
	case PodfileNotRun:
		return "not run"
	case PodfileMissing:
		return "missing"
	case PodfileAlreadyPatched:
		return "already patched"
	case PodfilePatched:
		return "patched"
	default:
		return fmt.Sprintf("PodfileOutcome(%d)", int(o))
	}
}

// Report summarizes an integration pass.
type Report struct {
	ReferencesAdded      int
	ReferencesReused     int
	ReferencesRegistered int
	ProductsAdded        int
	ProductsReused       int
	LinksAdded           int
	LinksPresent         int
	TargetProductsAdded  int
	Warnings             []LookupWarning

	Podfile        PodfileOutcome
	ProjectWritten bool
	PodfileWritten bool
}

// Changed reports whether the pass mutated the descriptor graph.
func (r *Report) Changed() bool {
	return r.ReferencesAdded+r.ReferencesRegistered+r.ProductsAdded+r.LinksAdded+r.TargetProductsAdded > 0
}

// Warn appends a lookup warning.
func (r *Report) Warn(w LookupWarning) {
	r.Warnings = append(r.Warnings, w)
}
