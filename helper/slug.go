package helper

import (
	"fmt"
	"hotel_manager/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueHotelSlug ignora el propio hotel (excludeId) al editar
func GenerateUniqueHotelSlug(tx *gorm.DB, name string, excludeId uint) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		query := tx.Model(&model.Hotel{}).Where("slug = ?", result)
		if excludeId > 0 {
			query = query.Where("id <> ?", excludeId)
		}
		query.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
