package podfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/spmlink/internal/core/domain"
	"go.trai.ch/spmlink/internal/engine/podfile"
)

func hookSettings(strategy domain.SpliceStrategy) domain.PodfileSettings {
	return domain.PodfileSettings{Hook: "hook", Strategy: strategy}
}

func TestPatch_InsertsBeforeFinalEnd(t *testing.T) {
	for _, strategy := range []domain.SpliceStrategy{domain.SpliceGreedy, domain.SpliceNested} {
		t.Run(string(strategy), func(t *testing.T) {
			p := podfile.NewPatcher(hookSettings(strategy))

			got := p.Patch("hook do\n  X\nend", "MARK", "  MARK_LINE\n")

			assert.Equal(t, "hook do\n  X\n  MARK_LINE\nend", got)
			assert.Equal(t, 1, strings.Count(got, "MARK_LINE"))
			assert.Less(t, strings.Index(got, "MARK_LINE"), strings.LastIndex(got, "end"))
		})
	}
}

func TestPatch_FreshDocument(t *testing.T) {
	p := podfile.NewPatcher(hookSettings(domain.SpliceGreedy))

	got := p.Patch("", "MARK", "  MARK_LINE\n")

	assert.Equal(t, "hook do\n  MARK_LINE\nend\n", got)
	assert.Equal(t, 1, strings.Count(got, "hook do"))
}

func TestPatch_Idempotent(t *testing.T) {
	inputs := map[string]string{
		"empty":         "",
		"no hook":       "target 'example' do\nend\n",
		"hook":          "hook do\n  X\nend",
		"nested hook":   "target 'a' do\n  hook do\n    X\n  end\nend\n",
		"one line hook": "hook do; X; end\n",
	}

	for name, input := range inputs {
		for _, strategy := range []domain.SpliceStrategy{domain.SpliceGreedy, domain.SpliceNested} {
			t.Run(name+"/"+string(strategy), func(t *testing.T) {
				p := podfile.NewPatcher(hookSettings(strategy))
				once := p.Patch(input, "MARK", "  MARK_LINE\n")
				twice := p.Patch(once, "MARK", "  MARK_LINE\n")
				assert.Equal(t, once, twice)
				assert.Equal(t, 1, strings.Count(twice, "MARK_LINE"))
				assert.Equal(t, 1, strings.Count(twice, "hook do"))
			})
		}
	}
}

func TestPatch_OneLineHook(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{
			name:   "block parameters",
			script: "post_install do |installer| puts 'x' end\n",
			want:   "post_install do |installer| puts 'x' \n  MARK_LINE\nend\n",
		},
		{
			name:   "semicolons",
			script: "post_install do; x; end\n",
			want:   "post_install do; x; \n  MARK_LINE\nend\n",
		},
	}

	for _, tt := range tests {
		for _, strategy := range []domain.SpliceStrategy{domain.SpliceGreedy, domain.SpliceNested} {
			t.Run(tt.name+"/"+string(strategy), func(t *testing.T) {
				p := podfile.NewPatcher(domain.PodfileSettings{
					Hook:     "post_install",
					HookArgs: "installer",
					Strategy: strategy,
				})

				got := p.Patch(tt.script, "MARK", "  MARK_LINE\n")

				assert.Equal(t, tt.want, got)
				assert.Equal(t, 1, strings.Count(got, "post_install do"))
			})
		}
	}
}

func TestPatch_MarkerPresent(t *testing.T) {
	p := podfile.NewPatcher(hookSettings(domain.SpliceGreedy))
	script := "# MARK\nhook do\nend\n"

	assert.Equal(t, script, p.Patch(script, "MARK", "  MARK_LINE\n"))
}

func TestPatch_AddsMissingNewlines(t *testing.T) {
	p := podfile.NewPatcher(domain.PodfileSettings{Hook: "post_install", HookArgs: "installer"})

	got := p.Patch("target 'a' do\nend", "MARK", "  MARK")

	assert.Equal(t, "target 'a' do\nend\n\npost_install do |installer|\n  MARK\nend\n", got)
}

func TestPatch_SpliceStrategies(t *testing.T) {
	script := "target 'a' do\n  hook do\n    X\n  end\nend\n"

	greedy := podfile.NewPatcher(hookSettings(domain.SpliceGreedy)).Patch(script, "MARK", "  MARK\n")
	assert.Equal(t, "target 'a' do\n  hook do\n    X\n  end\n  MARK\nend\n", greedy,
		"greedy splicing uses the last end in the document")

	nested := podfile.NewPatcher(hookSettings(domain.SpliceNested)).Patch(script, "MARK", "  MARK\n")
	assert.Equal(t, "target 'a' do\n  hook do\n    X\n    MARK\n  end\nend\n", nested)
}

func TestPatch_NestedSkipsCommentsAndStrings(t *testing.T) {
	script := strings.Join([]string{
		"hook do |installer|",
		"  # the end is near",
		"  puts 'end'",
		"  if ready then x.end end",
		"  items.each do |i|",
		"    while i > 0 do",
		"      i -= 1",
		"    end",
		"  end",
		"end",
		"",
	}, "\n")

	got := podfile.NewPatcher(hookSettings(domain.SpliceNested)).Patch(script, "MARK", "  MARK\n")

	assert.True(t, strings.HasSuffix(got, "  end\n  MARK\nend\n"), got)
}

func TestPatch_Golden(t *testing.T) {
	settings := domain.DefaultPodfileSettings(domain.DefaultPodTarget)
	block := podfile.RenderBlock(settings)

	tests := []struct {
		name     string
		fixture  string
		strategy domain.SpliceStrategy
	}{
		{name: "expo_greedy", fixture: "expo.Podfile", strategy: domain.SpliceGreedy},
		{name: "expo_nested", fixture: "expo.Podfile", strategy: domain.SpliceNested},
		{name: "bare_appended", fixture: "bare.Podfile", strategy: domain.SpliceNested},
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := os.ReadFile(filepath.Join("testdata", tt.fixture))
			require.NoError(t, err)

			s := settings
			s.Strategy = tt.strategy
			got := podfile.NewPatcher(s).Patch(string(input), settings.Marker, block)

			g.Assert(t, tt.name, []byte(got))
		})
	}
}

func TestRenderBlock(t *testing.T) {
	settings := domain.DefaultPodfileSettings(domain.DefaultPodTarget)
	block := podfile.RenderBlock(settings)

	assert.Contains(t, block, settings.Marker)
	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "render_default", []byte(block))

	settings.PodTarget = "it's"
	settings.BuildSettings = nil
	assert.Contains(t, podfile.RenderBlock(settings), `if target.name == 'it\'s'`)
	assert.NotContains(t, podfile.RenderBlock(settings), "build_configurations")
}
