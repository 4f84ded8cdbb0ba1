package ant

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"

	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/antscan/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	_ ports.TargetParser = ToolOutputParser{}
	_ ports.TargetParser = BuildFileParser{}
)

var (
	defaultTargetLine = regexp.MustCompile(`(?i)(Default target: )([\w\-]+)`)
	sectionHeaderLine = regexp.MustCompile(`(?i)^(buildfile:|default target:|[\w ]*targets?:\s*$)`)
	buildTrailerLine  = regexp.MustCompile(`^(BUILD (SUCCESSFUL|FAILED)|Total time:)`)
	descriptionColumn = regexp.MustCompile(`\s{2,}`)
)

// ToolOutputParser reads the target list printed by `ant -p`.
type ToolOutputParser struct{}

// Parse returns every listed target in output order. The target named on the
// "Default target:" line gets the default suffix. Parse never fails.
func (ToolOutputParser) Parse(data []byte) (*domain.Targets, error) {
	defaultTarget := ""
	if m := defaultTargetLine.FindSubmatch(data); m != nil {
		defaultTarget = strings.TrimSpace(string(m[2]))
	}

	targets := domain.NewTargets()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Ant pads names to a column before printing the description.
		name := line
		if loc := descriptionColumn.FindStringIndex(line); loc != nil {
			name = line[:loc[0]]
		}
		if name == "" || sectionHeaderLine.MatchString(name) || buildTrailerLine.MatchString(name) {
			continue
		}
		targets.Add(name, defaultTarget)
	}
	return targets, nil
}

type projectMarkup struct {
	XMLName xml.Name       `xml:"project"`
	Default string         `xml:"default,attr"`
	Targets []targetMarkup `xml:"target"`
}

type targetMarkup struct {
	Name string `xml:"name,attr"`
}

// BuildFileParser reads targets straight from buildfile XML.
type BuildFileParser struct{}

// Parse returns the project's named targets in document order.
func (BuildFileParser) Parse(data []byte) (*domain.Targets, error) {
	var project projectMarkup

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charsetReader
	decoder.Entity = xml.HTMLEntity
	if err := decoder.Decode(&project); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMarkupParseFailed.Error())
	}

	defaultTarget := strings.TrimSpace(project.Default)
	targets := domain.NewTargets()
	for _, t := range project.Targets {
		targets.Add(t.Name, defaultTarget)
	}
	return targets, nil
}

// charsetReader decodes buildfiles that declare a non UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, zerr.With(zerr.New("unsupported buildfile encoding"), "encoding", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
