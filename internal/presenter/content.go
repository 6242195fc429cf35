package presenter

import (
	"callguard/internal/models"
	"fmt"
	"strings"
)

// Content is the text of one overlay surface.
type Content struct {
	Title        string   `json:"title"`
	Number       string   `json:"number"`
	Lines        []string `json:"lines"`
	Hint         string   `json:"hint,omitempty"`
	AcceptLabel  string   `json:"accept_label"`
	DismissLabel string   `json:"dismiss_label"`
}

const dismissLabel = "닫기"

// Render builds the content for state. Every variant must be handled here.
func Render(state OverlayState, unsetRegion string) Content {
	switch state.Variant {
	case VariantHit:
		lines := []string{
			fmt.Sprintf("⚠️ %d개 업소에서 주의 등록", models.TotalCount(state.Records)),
			models.TagSummary(state.Records),
		}
		for _, r := range state.Records {
			if detail := recordDetail(r, unsetRegion); detail != "" {
				lines = append(lines, detail)
			}
		}
		return Content{
			Title:        "🚨 얘진상 경고",
			Number:       state.MaskedNumber,
			Lines:        lines,
			Hint:         "응대에 주의하세요",
			AcceptLabel:  "태그 추가",
			DismissLabel: dismissLabel,
		}
	case VariantClean:
		return Content{
			Title:        "✅ 등록된 이력 없음",
			Number:       state.MaskedNumber,
			Lines:        []string{"신고된 기록이 없는 번호입니다"},
			AcceptLabel:  "진상 등록",
			DismissLabel: dismissLabel,
		}
	case VariantExpired:
		return Content{
			Title:        "⏰ 구독 만료",
			Number:       state.MaskedNumber,
			Lines:        []string{"구독이 만료되어 조회 결과를 표시할 수 없습니다"},
			Hint:         "앱에서 구독을 갱신하세요",
			AcceptLabel:  "구독 갱신",
			DismissLabel: dismissLabel,
		}
	}
	panic(fmt.Sprintf("presenter: unhandled variant %d", int(state.Variant)))
}

// recordDetail renders the optional context of r, or "" if none was reported.
func recordDetail(r models.ReputationRecord, unsetRegion string) string {
	var parts []string
	if region, ok := r.DisplayRegion(unsetRegion); ok && region != "" {
		parts = append(parts, region)
	}
	if category, ok := r.Category.Get(); ok && category != "" {
		parts = append(parts, category)
	}
	if shop, ok := r.ShopName.Get(); ok && shop != "" {
		parts = append(parts, shop)
	}
	if len(parts) == 0 {
		return ""
	}
	return r.Tag + ": " + strings.Join(parts, " · ")
}
