package ui

// Layout sizes.
const (
	// chromeHeight is the number of rows taken by the header and footer.
	chromeHeight = 2

	// helpModalWidth is the width of the help overlay.
	helpModalWidth = 44

	// markdownMaxWidth caps the word-wrap width of rendered markdown.
	markdownMaxWidth = 100

	// minContentHeight keeps the viewport usable on tiny terminals.
	minContentHeight = 3
)
