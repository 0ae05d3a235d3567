package drawml

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// ShapeType names a preset geometry from the embedded catalog. The values
// are the preset names used by DrawingML documents.
type ShapeType string

// Preset shapes carried in the embedded catalog.
const (
	ShapeLine                      ShapeType = "line"
	ShapeStraightConnector1        ShapeType = "straightConnector1"
	ShapeBentConnector3            ShapeType = "bentConnector3"
	ShapeRect                      ShapeType = "rect"
	ShapeRoundRect                 ShapeType = "roundRect"
	ShapeSnip1Rect                 ShapeType = "snip1Rect"
	ShapeSnip2SameRect             ShapeType = "snip2SameRect"
	ShapeEllipse                   ShapeType = "ellipse"
	ShapeTriangle                  ShapeType = "triangle"
	ShapeRtTriangle                ShapeType = "rtTriangle"
	ShapeDiamond                   ShapeType = "diamond"
	ShapeParallelogram             ShapeType = "parallelogram"
	ShapeTrapezoid                 ShapeType = "trapezoid"
	ShapePentagon                  ShapeType = "pentagon"
	ShapeHexagon                   ShapeType = "hexagon"
	ShapeOctagon                   ShapeType = "octagon"
	ShapeDecagon                   ShapeType = "decagon"
	ShapeDodecagon                 ShapeType = "dodecagon"
	ShapePlus                      ShapeType = "plus"
	ShapeStar4                     ShapeType = "star4"
	ShapeStar5                     ShapeType = "star5"
	ShapeRightArrow                ShapeType = "rightArrow"
	ShapeLeftArrow                 ShapeType = "leftArrow"
	ShapeUpArrow                   ShapeType = "upArrow"
	ShapeDownArrow                 ShapeType = "downArrow"
	ShapeLeftRightArrow            ShapeType = "leftRightArrow"
	ShapeChevron                   ShapeType = "chevron"
	ShapeHomePlate                 ShapeType = "homePlate"
	ShapePie                       ShapeType = "pie"
	ShapeChord                     ShapeType = "chord"
	ShapeArc                       ShapeType = "arc"
	ShapeDonut                     ShapeType = "donut"
	ShapeFrame                     ShapeType = "frame"
	ShapeBevel                     ShapeType = "bevel"
	ShapeCube                      ShapeType = "cube"
	ShapeCan                       ShapeType = "can"
	ShapePlaque                    ShapeType = "plaque"
	ShapeFoldedCorner              ShapeType = "foldedCorner"
	ShapeTeardrop                  ShapeType = "teardrop"
	ShapeHeart                     ShapeType = "heart"
	ShapeLightningBolt             ShapeType = "lightningBolt"
	ShapeMathPlus                  ShapeType = "mathPlus"
	ShapeMathMinus                 ShapeType = "mathMinus"
	ShapeMathEqual                 ShapeType = "mathEqual"
	ShapeCorner                    ShapeType = "corner"
	ShapeDiagStripe                ShapeType = "diagStripe"
	ShapeWedgeRectCallout          ShapeType = "wedgeRectCallout"
	ShapeWedgeEllipseCallout       ShapeType = "wedgeEllipseCallout"
	ShapeBracketPair               ShapeType = "bracketPair"
	ShapeFlowChartProcess          ShapeType = "flowChartProcess"
	ShapeFlowChartAlternateProcess ShapeType = "flowChartAlternateProcess"
	ShapeFlowChartDecision         ShapeType = "flowChartDecision"
	ShapeFlowChartTerminator       ShapeType = "flowChartTerminator"
	ShapeFlowChartConnector        ShapeType = "flowChartConnector"
	ShapeFlowChartPreparation      ShapeType = "flowChartPreparation"
	ShapeFlowChartDocument         ShapeType = "flowChartDocument"
	ShapeFlowChartInternalStorage  ShapeType = "flowChartInternalStorage"
	ShapeFlowChartPredefinedProc   ShapeType = "flowChartPredefinedProcess"
	ShapeFlowChartOffpageConnector ShapeType = "flowChartOffpageConnector"
	ShapeFlowChartSort             ShapeType = "flowChartSort"
	ShapeFlowChartExtract          ShapeType = "flowChartExtract"
	ShapeFlowChartMerge            ShapeType = "flowChartMerge"
	ShapeFlowChartCollate          ShapeType = "flowChartCollate"
	ShapeFlowChartSummingJunction  ShapeType = "flowChartSummingJunction"
	ShapeFlowChartOr               ShapeType = "flowChartOr"
	ShapeFlowChartDelay            ShapeType = "flowChartDelay"
	ShapeFlowChartDisplay          ShapeType = "flowChartDisplay"
)

var (
	presetOnce sync.Once
	presetDefs map[ShapeType]*Geometry
)

func loadPresets() {
	var defs []Geometry
	if err := yaml.Unmarshal(presetsYAML, &defs); err != nil {
		panic("drawml: embedded preset catalog is invalid: " + err.Error())
	}
	presetDefs = make(map[ShapeType]*Geometry, len(defs))
	for i := range defs {
		presetDefs[ShapeType(defs[i].Name)] = &defs[i]
	}
}

// PresetGeometry returns the named preset's definition from the embedded
// catalog. The returned value is shared and must not be modified; copy it
// before editing. The second result is false for unknown names.
func PresetGeometry(name ShapeType) (*Geometry, bool) {
	presetOnce.Do(loadPresets)
	g, ok := presetDefs[name]
	return g, ok
}

// PresetNames returns every catalog preset name in sorted order.
func PresetNames() []ShapeType {
	presetOnce.Do(loadPresets)
	names := make([]ShapeType, 0, len(presetDefs))
	for name := range presetDefs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ResolvePreset resolves the named catalog preset at the given bounds.
func ResolvePreset(name ShapeType, width, height float64, opts *ResolveOptions) (*ResolvedGeometry, error) {
	g, ok := PresetGeometry(name)
	if !ok {
		return nil, fmt.Errorf("unknown preset shape %q", string(name))
	}
	return g.Resolve(width, height, opts)
}
