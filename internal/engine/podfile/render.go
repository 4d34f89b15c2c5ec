package podfile

import (
	"fmt"
	"strings"

	"go.trai.ch/spmlink/internal/core/domain"
)

// RenderBlock renders the hook body that configures the pod target for Swift packages.
// Lines are indented for a hook at the top level of the Podfile.
func RenderBlock(s domain.PodfileSettings) string {
	var b strings.Builder
	line := func(depth int, format string, args ...any) {
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\n")
	}

	line(1, "# Configure %s dependencies", s.Marker)
	line(1, "installer.pods_project.targets.each do |target|")
	line(2, "if target.name == %s", rubyString(s.PodTarget))
	line(3, "puts %s", rubyString("Configuring Swift Package dependencies for "+s.PodTarget+" Pod..."))
	if len(s.BuildSettings) > 0 {
		line(3, "target.build_configurations.each do |config|")
		for _, setting := range s.BuildSettings {
			line(4, "config.build_settings[%s] = %s", rubyString(setting.Key), rubyArray(setting.Values))
		}
		line(3, "end")
	}
	line(2, "end")
	line(1, "end")
	return b.String()
}

// rubyString quotes s as a single quoted Ruby literal, which leaves $(VAR) untouched.
func rubyString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

func rubyArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = rubyString(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
