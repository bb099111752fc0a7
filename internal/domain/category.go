package domain

// Canonical product categories. Catalog entries may use finer-grained labels
// (e.g. "Hydrating & Calming Serum"); matching against these names is done
// with the bidirectional substring rule.
const (
	CategoryCleanser              = "Cleanser"
	CategoryGentleCleanser        = "Gentle Cleanser"
	CategoryToner                 = "Toner"
	CategorySerum                 = "Serum"
	CategoryMoisturizer           = "Moisturizer"
	CategoryHydratingMoisturizer  = "Hydrating Moisturizer"
	CategoryHydrator              = "Hydrator"
	CategoryTargetedTreatment     = "Targeted Treatment"
	CategoryTargetedAcneTreatment = "Targeted Acne Treatment"
	CategoryExfoliant             = "Exfoliant"
	CategorySunscreen             = "Sunscreen"
	CategoryEyeCare               = "Eye Care"
	CategoryMask                  = "Mask"
	CategoryLipCare               = "Lip Care"
	CategoryShampoo               = "Shampoo"
	CategoryConditioner           = "Conditioner"
	CategoryScalpTreatment        = "Scalp Treatment"
	CategoryHairMask              = "Hair Mask"
	CategoryHairOil               = "Hair Oil"
)

// CanonicalCategories lists every canonical category in display order
var CanonicalCategories = []string{
	CategoryCleanser,
	CategoryGentleCleanser,
	CategoryToner,
	CategorySerum,
	CategoryMoisturizer,
	CategoryHydratingMoisturizer,
	CategoryHydrator,
	CategoryTargetedTreatment,
	CategoryTargetedAcneTreatment,
	CategoryExfoliant,
	CategorySunscreen,
	CategoryEyeCare,
	CategoryMask,
	CategoryLipCare,
	CategoryShampoo,
	CategoryConditioner,
	CategoryScalpTreatment,
	CategoryHairMask,
	CategoryHairOil,
}
