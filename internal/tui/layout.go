package tui

type pageLayout struct {
	windowWidth  int
	windowHeight int
	fieldWidth   int
	resultWidth  int
	resultHeight int
}

func newPageLayout() pageLayout {
	return pageLayout{
		fieldWidth:   20,
		resultWidth:  74,
		resultHeight: 10,
	}
}

// Update recomputes field and result sizes for a window of width x height.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	content := width - panelHorizontalChrome
	if content < minContentWidth {
		content = minContentWidth
	}
	l.fieldWidth = content/fieldColumns - fieldChrome
	if l.fieldWidth < minFieldWidth {
		l.fieldWidth = minFieldWidth
	}
	l.resultWidth = content
	l.resultHeight = height - layoutChrome
	if l.resultHeight < minResultHeight {
		l.resultHeight = minResultHeight
	}
}
