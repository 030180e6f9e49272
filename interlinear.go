package bereia

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"
)

var (
	// titleTailRe captures the "— Ocorrência ..." tail of a title attribute
	// so it survives the rewrite.
	titleTailRe = regexp.MustCompile(`(\s*[\-–—]{1,2}\s*Ocorrência.*)$`)

	spanGreekRe  = regexp.MustCompile(`<span class="greek">([^<]+)</span>`)
	spanEngRe    = regexp.MustCompile(`<span class="eng">([^<]*)</span>`)
	titleAttrRe  = regexp.MustCompile(`(title=")([^"]*)(")`)
	anchorTextRe = regexp.MustCompile(`(>)([^<]*)(</a>)`)
)

// PatchInterlinear rewrites the transliterations of an interlinear HTML
// file in place, recomputing each anchor title and text from the Greek word
// of its group. It returns the number of anchor lines changed; nothing is
// written when no line changed.
func PatchInterlinear(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read interlinear file: %w", err)
	}

	patched, changed := patchInterlinearText(string(data))
	if changed == 0 {
		return 0, nil
	}
	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return changed, fmt.Errorf("write interlinear file: %w", err)
	}
	return changed, nil
}

// patchInterlinearText walks the document line by line. Each word group is
// a translit marker line, an anchor line carrying the title, a greek span
// line and an eng span line; groups with missing parts are skipped.
func patchInterlinearText(text string) (string, int) {
	lines := strings.SplitAfter(text, "\n")
	changed := 0

	i := 0
	n := len(lines)
	for i < n {
		if !strings.Contains(lines[i], `<span class="translit"`) {
			i++
			continue
		}

		j := i + 1
		for j < n && !strings.Contains(lines[j], "<a ") {
			j++
		}
		if j >= n {
			break
		}

		k := j + 1
		for k < n && !strings.Contains(lines[k], `<span class="greek">`) {
			k++
		}
		if k >= n {
			break
		}
		greekMatch := spanGreekRe.FindStringSubmatch(lines[k])
		if greekMatch == nil {
			i = k + 1
			continue
		}
		greekWord := strings.TrimSpace(greekMatch[1])

		l := k + 1
		for l < n && !strings.Contains(lines[l], `<span class="eng">`) {
			l++
		}
		if l >= n {
			break
		}
		engMatch := spanEngRe.FindStringSubmatch(lines[l])
		if engMatch == nil {
			i = l + 1
			continue
		}
		engText := strings.TrimSpace(engMatch[1])

		translit := Transliterate(greekWord)
		newAnchor := rewriteAnchor(lines[j], translit, engText)
		if newAnchor != lines[j] {
			lines[j] = newAnchor
			changed++
		}

		i = l + 1
	}

	return strings.Join(lines, ""), changed
}

// rewriteAnchor rebuilds the anchor line: the title attribute becomes
// "<translit>: <eng>" with any Ocorrência tail preserved, and the anchor
// text becomes the transliteration.
func rewriteAnchor(line, translit, engText string) string {
	var tail string
	if m := titleAttrRe.FindStringSubmatch(line); m != nil {
		if t := titleTailRe.FindStringSubmatch(m[2]); t != nil {
			tail = t[1]
		}
	}
	newTitle := fmt.Sprintf("%s: %s%s", translit, engText, tail)

	switch {
	case titleAttrRe.MatchString(line):
		line = replaceGroup(line, titleAttrRe, newTitle)
	case strings.Contains(line, `\1`):
		// Salvage lines corrupted by earlier backref substitutions: rebuild
		// the whole anchor tail with the original indentation.
		indent := line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
		return fmt.Sprintf("%s title=\"%s\">%s</a></span><br />\n", indent, newTitle, translit)
	default:
		if gt := strings.Index(line, ">"); gt >= 0 {
			line = line[:gt] + ` title="` + newTitle + `"` + line[gt:]
		}
	}

	return replaceGroup(line, anchorTextRe, translit)
}

// replaceGroup replaces the second capture group of the first match of re
// in line with repl.
func replaceGroup(line string, re *regexp.Regexp, repl string) string {
	idx := re.FindStringSubmatchIndex(line)
	if idx == nil {
		return line
	}
	// Group 2 spans idx[4]:idx[5].
	return line[:idx[4]] + repl + line[idx[5]:]
}
