package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"histlint/internal/shell"
)

// shellcheckExclude lists diagnostic codes that are noise when the
// "script" under inspection is a history file: unmatched quotes across
// entries, missing shebangs, unchecked cd, and so on.
var shellcheckExclude = []int{1089, 1090, 1091, 2086, 2103, 2148, 2154, 2164, 2224, 2230}

var (
	scCodeRe     = regexp.MustCompile(`SC(\d{4}):`)
	scLocationRe = regexp.MustCompile(`^In .* line .*:\n`)
	scMarkerRe   = regexp.MustCompile(`\^-- .*`)
)

// Shellcheck pipes the history file through shellcheck and re-prints a
// filtered, deduplicated subset of its findings. A missing binary gets
// a pointer instead; a clean exit gets "Nothing to report."
func (r *Reporter) Shellcheck(ctx context.Context, sh shell.Shell, histPath string) {
	r.Header("Shellcheck", true)
	if _, err := exec.LookPath("shellcheck"); err != nil {
		fmt.Fprintln(r.w, "Shellcheck not installed - see https://www.shellcheck.net")
		return
	}

	excludes := make([]string, len(shellcheckExclude))
	for i, code := range shellcheckExclude {
		excludes[i] = strconv.Itoa(code)
	}
	cmd := exec.CommandContext(ctx, "shellcheck",
		"--exclude="+strings.Join(excludes, ","),
		"--shell="+sh.Name(),
		histPath)
	out, err := cmd.Output()
	if err == nil {
		fmt.Fprintln(r.w, "Nothing to report.")
		return
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// couldn't run at all; not a lint result
		slog.Debug("skipping shellcheck", "error", err)
		return
	}
	// non-zero exit status means shellcheck found something
	for _, finding := range FilterFindings(string(out), r.opts.ShellcheckCap) {
		fmt.Fprintln(r.w, scMarkerRe.ReplaceAllStringFunc(finding, func(m string) string {
			return tipStyle.Render(m)
		}))
	}
}

// FilterFindings splits shellcheck output into paragraphs and keeps
// each paragraph that introduces at least one unseen diagnostic code,
// up to limit new codes per paragraph. Once a paragraph is kept, all of
// its surviving codes count as seen, so later paragraphs repeating them
// are suppressed. The leading "In ... line ...:" locator is stripped.
func FilterFindings(output string, limit int) []string {
	paragraphs := strings.Split(strings.TrimSpace(output), "\n\n")
	seen := make(map[string]struct{})
	var kept []string
	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		var fresh []string
		for _, m := range scCodeRe.FindAllStringSubmatch(para, -1) {
			if _, ok := seen[m[1]]; !ok {
				fresh = append(fresh, m[1])
			}
		}
		if len(fresh) > limit {
			fresh = fresh[:limit]
		}
		if len(fresh) == 0 {
			continue
		}
		for _, code := range fresh {
			seen[code] = struct{}{}
		}
		kept = append(kept, scLocationRe.ReplaceAllString(para, ""))
	}
	return kept
}
