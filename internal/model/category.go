package model

// Category names the bucket a type element is written to.
type Category string

// Known categories in rule evaluation order.
const (
	CategoryAmmo          Category = "ammo"
	CategoryArmbands      Category = "armbands"
	CategoryAmmoBoxes     Category = "ammo_boxes"
	CategoryAnimals       Category = "animals"
	CategoryContamination Category = "contamination"
	CategoryFlags         Category = "flags"
	CategoryStaticObjs    Category = "staticObjs"
	CategoryVehicles      Category = "vehicles"
	CategoryWrecks        Category = "wrecks"
	CategoryZombies       Category = "zombies"
	CategorySeasonal      Category = "seasonal"
	CategoryClothes       Category = "clothes"
	CategoryExplosives    Category = "explosives"
	CategoryContainers    Category = "containers"
	CategoryFood          Category = "food"
	CategoryTools         Category = "tools"
	CategoryWeapons       Category = "weapons"
	CategoryVehicleParts  Category = "vehicleParts"
	CategoryUncategorized Category = "uncategorized"
)

// CategoryFileExt is the extension of generated category files.
const CategoryFileExt = ".xml"

// KnownCategories returns every built-in category in rule order.
func KnownCategories() []Category {
	return []Category{
		CategoryAmmo,
		CategoryArmbands,
		CategoryAmmoBoxes,
		CategoryAnimals,
		CategoryContamination,
		CategoryFlags,
		CategoryStaticObjs,
		CategoryVehicles,
		CategoryWrecks,
		CategoryZombies,
		CategorySeasonal,
		CategoryClothes,
		CategoryExplosives,
		CategoryContainers,
		CategoryFood,
		CategoryTools,
		CategoryWeapons,
		CategoryVehicleParts,
		CategoryUncategorized,
	}
}

// FileName returns the generated file name for the category, e.g. "ammo.xml".
func (c Category) FileName() string {
	return string(c) + CategoryFileExt
}

func (c Category) String() string {
	return string(c)
}
