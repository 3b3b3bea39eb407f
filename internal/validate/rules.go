package validate

import "github.com/erazemk/tastelog/internal/model"

// Origin validates an origin payload.
func Origin(p map[string]any) (model.OriginInput, error) {
	v := New(p)
	in := model.OriginInput{
		Name:  v.RequiredString("name", "産地名は必須です"),
		Notes: v.OptionalString("notes"),
	}
	return in, v.Err()
}

// BeanMaster validates a bean payload.
func BeanMaster(p map[string]any) (model.BeanMasterInput, error) {
	v := New(p)
	in := model.BeanMasterInput{
		Name:       v.RequiredString("name", "豆の名前は必須です"),
		Origin:     v.OptionalString("origin"),
		RoastLevel: Enum(v, "roastLevel", model.ParseRoastLevel, "無効な焙煎度です"),
		Process:    Enum(v, "process", model.ParseProcess, "無効な精製方法です"),
		Notes:      v.OptionalString("notes"),
	}
	return in, v.Err()
}

// Shop validates a shop payload.
func Shop(p map[string]any) (model.ShopInput, error) {
	v := New(p)
	in := model.ShopInput{
		Name:    v.RequiredString("name", "ショップ名は必須です"),
		Address: v.OptionalString("address"),
		URL:     v.OptionalString("url"),
		Notes:   v.OptionalString("notes"),
	}
	return in, v.Err()
}

// Dripper validates a dripper payload.
func Dripper(p map[string]any) (model.DripperInput, error) {
	v := New(p)
	in := model.DripperInput{
		Name:         v.RequiredString("name", "ドリッパー名は必須です"),
		Manufacturer: v.OptionalString("manufacturer"),
		Size:         Enum(v, "size", model.ParseDripperSize, "無効なサイズです"),
		Notes:        v.OptionalString("notes"),
		URL:          v.OptionalString("url"),
		ImagePath:    v.ImagePath("imagePath"),
	}
	return in, v.Err()
}

// Filter validates a filter payload.
func Filter(p map[string]any) (model.FilterInput, error) {
	v := New(p)
	in := model.FilterInput{
		Name:      v.RequiredString("name", "フィルター名は必須です"),
		Type:      Enum(v, "type", model.ParseFilterType, "無効なフィルタータイプです"),
		Notes:     v.OptionalString("notes"),
		URL:       v.OptionalString("url"),
		ImagePath: v.ImagePath("imagePath"),
	}
	return in, v.Err()
}

// Tasting validates a tasting payload. All references are optional.
func Tasting(p map[string]any) (model.TastingInput, error) {
	v := New(p)
	in := model.TastingInput{
		BeanID:    v.OptionalID("beanId", "無効な豆IDです"),
		DripperID: v.OptionalID("dripperId", "無効なドリッパーIDです"),
		FilterID:  v.OptionalID("filterId", "無効なフィルターIDです"),
		Notes:     v.OptionalString("notes"),
		ImagePath: v.ImagePath("imagePath"),
	}
	return in, v.Err()
}
