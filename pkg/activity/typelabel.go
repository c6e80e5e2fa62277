package activity

import "strings"

// TypeSoilPreparation is the activity type that always renders brown on the
// month grid, regardless of status.
const TypeSoilPreparation = "LAM_DAT"

var typeLabels = map[string]string{
	TypeSoilPreparation:   "Làm đất",
	"GIEO_TRONG":          "Gieo trồng",
	"TUOI_TIEU":           "Tưới tiêu",
	"BON_PHAN":            "Bón phân",
	"PHUN_THUOC":          "Phun thuốc",
	"THU_HOACH":           "Thu hoạch",
	"KIEM_TRA_CHAT_LUONG": "Kiểm tra chất lượng",
}

// TypeLabel resolves an activity type code to its display name. Unknown codes
// echo the raw value so nothing renders blank.
func TypeLabel(activityType string) string {
	key := strings.ToUpper(strings.TrimSpace(activityType))
	if label, ok := typeLabels[key]; ok {
		return label
	}
	if key == "" {
		return "Hoạt động"
	}
	return activityType
}
