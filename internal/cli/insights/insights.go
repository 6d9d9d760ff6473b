package insights

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/wellhub/internal/cli"
	wellness "github.com/julianstephens/wellhub/internal/insights"
)

type InsightsCmd struct {
	Format string `help:"Output format." enum:"text,json,yaml" default:"text"`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	found, err := wellness.NewAnalyzer(ctx.Records()).AnalyzeAll()
	if err != nil {
		return fmt.Errorf("failed to analyze records: %w", err)
	}

	switch c.Format {
	case "json":
		if found == nil {
			found = []wellness.Insight{}
		}
		data, err := json.MarshalIndent(found, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode insights: %w", err)
		}
		ctx.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(found)
		if err != nil {
			return fmt.Errorf("failed to encode insights: %w", err)
		}
		ctx.Printf("%s", data)
		return nil
	}

	if len(found) == 0 {
		ctx.Println("✅ No suggestions right now. Keep up the good habits!")
		return nil
	}

	ctx.Printf("📊 Found %d suggestion(s):\n\n", len(found))
	for i, in := range found {
		display(ctx, i+1, in)
	}
	return nil
}

func display(ctx *cli.Context, num int, in wellness.Insight) {
	ctx.Printf("%d. %s %s\n", num, icon(in.Type), title(in.Type))
	ctx.Printf("   %s\n", in.Reason)
	if in.CurrentValue != nil {
		ctx.Printf("   Current:   %s\n", formatValue(in.CurrentValue))
	}
	if in.SuggestedValue != nil {
		ctx.Printf("   Suggested: %s\n", formatValue(in.SuggestedValue))
	}
	ctx.Println()
}

func icon(t wellness.InsightType) string {
	switch t {
	case wellness.InsightShortSleep, wellness.InsightLowQuality:
		return "😴"
	case wellness.InsightBedtimeDrift:
		return "🕙"
	case wellness.InsightHydration:
		return "💧"
	case wellness.InsightCalorieSurplus:
		return "🍽️"
	case wellness.InsightWeightAway:
		return "⚖️"
	default:
		return "💡"
	}
}

func title(t wellness.InsightType) string {
	switch t {
	case wellness.InsightShortSleep:
		return "Sleep more"
	case wellness.InsightLowQuality:
		return "Improve sleep quality"
	case wellness.InsightBedtimeDrift:
		return "Keep a steady bedtime"
	case wellness.InsightHydration:
		return "Drink more water"
	case wellness.InsightCalorieSurplus:
		return "Calorie surplus"
	case wellness.InsightWeightAway:
		return "Weight trend"
	default:
		return string(t)
	}
}

// formatValue prints map values as sorted "key: value" pairs.
func formatValue(v interface{}) string {
	m, ok := v.(map[string]interface{})
	if !ok {
		return fmt.Sprint(v)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", strings.ReplaceAll(k, "_", " "), m[k]))
	}
	return strings.Join(parts, ", ")
}
