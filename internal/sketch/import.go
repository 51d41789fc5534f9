package sketch

import (
	"plotsketch/internal/geom"
	"plotsketch/internal/linetree"
	"plotsketch/internal/paper"
)

// DefaultImportMargin is the margin, in cm, around imported geometry.
const DefaultImportMargin = 1.0

// Import scales foreign geometry uniformly onto the page, inside the margin,
// then runs it through Build. Imports default to portrait.
func Import(name string, tree linetree.Tree, flipY bool, opt Options) (*Plot, error) {
	size := opt.Paper
	if size.Width == 0 {
		size = paper.Letter
	}
	o := paper.Portrait
	if opt.Orientation != nil {
		o = *opt.Orientation
	}
	w, h := size.Dimensions(o)
	margin := DefaultImportMargin
	if opt.Margin != nil {
		margin = *opt.Margin
	}
	closePaths := opt.ClosePaths != nil && *opt.ClosePaths
	flat, err := linetree.Flatten(tree, closePaths)
	if err != nil {
		return nil, err
	}
	fitted := geom.Fit(flat, geom.Box(0, 0, w, h).Inset(margin), flipY)

	// fitted inside the margin and closed already; clip to the page only
	done, page := false, 0.0
	opt.Margin = &page
	opt.ClosePaths = &done
	return Build(name, fitted.Node(), w, h, opt)
}
