package charts

// ChartSnippet is an embeddable ECharts fragment.
// Div holds a single root <div id="..."></div>, Script initializes the chart in it,
// HTML is both combined for template substitution.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

// EChartsScriptURL is the ECharts build the snippets expect on the page
const EChartsScriptURL = "https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"
