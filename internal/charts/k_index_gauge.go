package charts

import (
	"encoding/json"
	"fmt"

	"spaceexplorer/internal/models"
)

// KpGaugeSnippet builds an ECharts gauge for the current K-index
func (cg *KpChartGenerator) KpGaugeSnippet(kp float64) (ChartSnippet, error) {
	if kp < 0 || kp > 9 {
		return ChartSnippet{}, fmt.Errorf("K-index %.2f out of range", kp)
	}

	id := "chart-kp-gauge"
	option := map[string]interface{}{
		"tooltip": map[string]interface{}{
			"formatter": "{a} <br/>{b} : {c}",
		},
		"series": []interface{}{
			map[string]interface{}{
				"name":        "Kp",
				"type":        "gauge",
				"min":         0,
				"max":         9,
				"splitNumber": 9,
				"radius":      "80%",
				"axisLine": map[string]interface{}{
					"lineStyle": map[string]interface{}{
						"width": 20,
						"color": [][]interface{}{
							{0.22, "#28a745"}, // 0-2 Quiet
							{0.33, "#ffc107"}, // 2-3 Unsettled
							{0.56, "#fd7e14"}, // 3-5 Active
							{1.0, "#dc3545"},  // 5-9 Storm
						},
					},
				},
				"pointer": map[string]interface{}{
					"itemStyle": map[string]interface{}{
						"color": "auto",
					},
				},
				"axisLabel": map[string]interface{}{
					"color":    "inherit",
					"fontSize": 14,
					"distance": 35,
				},
				"detail": map[string]interface{}{
					"valueAnimation": true,
					"formatter":      fmt.Sprintf("%.2f\n%s", kp, models.KpLevel(kp)),
					"color":          "inherit",
					"fontSize":       14,
					"fontWeight":     "bold",
					"offsetCenter":   []interface{}{0, "60%"},
				},
				"data": []interface{}{
					map[string]interface{}{
						"value": kp,
						"name":  "Kp",
					},
				},
			},
		},
	}

	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, err
	}

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:250px;\"></div>", id)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, string(optJSON))

	completeHTML := fmt.Sprintf(`<script src="%s"></script>
<div class="gauge-item">
	<h4>Planetary K-index</h4>
	%s
</div>
%s`, EChartsScriptURL, div, script)

	return ChartSnippet{ID: id, Title: "Planetary K-index Gauge", Div: div, Script: script, HTML: completeHTML}, nil
}
