package usecase

import (
	"golang.org/x/text/language"

	"github.com/skinlens/backend/internal/domain"
)

// englishAliases maps English synonyms and partial phrases to canonical
// categories. Canonical names themselves resolve through the identity
// fallback and are only listed when they fan out to several categories.
var englishAliases = map[string][]string{
	"Gentle Cleanser":       {domain.CategoryGentleCleanser, domain.CategoryCleanser},
	"Face Wash":             {domain.CategoryCleanser, domain.CategoryGentleCleanser},
	"Facial Cleanser":       {domain.CategoryCleanser, domain.CategoryGentleCleanser},
	"Foaming Cleanser":      {domain.CategoryCleanser},
	"Cleansing Oil":         {domain.CategoryCleanser},
	"cleanser":              {domain.CategoryCleanser, domain.CategoryGentleCleanser},
	"Moisturiser":           {domain.CategoryMoisturizer, domain.CategoryHydratingMoisturizer},
	"moisturizer":           {domain.CategoryMoisturizer, domain.CategoryHydratingMoisturizer},
	"Face Cream":            {domain.CategoryMoisturizer, domain.CategoryHydratingMoisturizer},
	"Gel Moisturizer":       {domain.CategoryMoisturizer, domain.CategoryHydrator},
	"Night Cream":           {domain.CategoryMoisturizer},
	"Hydrating Cream":       {domain.CategoryHydratingMoisturizer, domain.CategoryHydrator},
	"Hydrating Serum":       {domain.CategorySerum, domain.CategoryHydrator},
	"Essence":               {domain.CategoryToner, domain.CategorySerum},
	"Ampoule":               {domain.CategorySerum},
	"Vitamin C Serum":       {domain.CategorySerum, domain.CategoryTargetedTreatment},
	"Retinol Serum":         {domain.CategorySerum, domain.CategoryTargetedTreatment},
	"Acne Treatment":        {domain.CategoryTargetedAcneTreatment, domain.CategoryTargetedTreatment},
	"Spot Treatment":        {domain.CategoryTargetedAcneTreatment},
	"Treatment":             {domain.CategoryTargetedTreatment, domain.CategoryTargetedAcneTreatment},
	"Exfoliator":            {domain.CategoryExfoliant},
	"Chemical Exfoliant":    {domain.CategoryExfoliant},
	"Peel":                  {domain.CategoryExfoliant},
	"SPF":                   {domain.CategorySunscreen},
	"Sun Protection":        {domain.CategorySunscreen},
	"Sunblock":              {domain.CategorySunscreen},
	"Eye Cream":             {domain.CategoryEyeCare},
	"Eye Serum":             {domain.CategoryEyeCare},
	"Face Mask":             {domain.CategoryMask},
	"Sheet Mask":            {domain.CategoryMask},
	"Clay Mask":             {domain.CategoryMask},
	"Lip Balm":              {domain.CategoryLipCare},
	"Anti-Dandruff Shampoo": {domain.CategoryShampoo, domain.CategoryScalpTreatment},
	"Scalp Serum":           {domain.CategoryScalpTreatment},
	"Hair Serum":            {domain.CategoryHairOil, domain.CategoryScalpTreatment},
	"Leave-in Conditioner":  {domain.CategoryConditioner},
	"Deep Conditioner":      {domain.CategoryHairMask, domain.CategoryConditioner},
}

// simplifiedChineseAliases covers labels the analysis emits in zh-Hans
var simplifiedChineseAliases = map[string][]string{
	"洁面乳":  {domain.CategoryCleanser, domain.CategoryGentleCleanser},
	"洗面奶":  {domain.CategoryCleanser, domain.CategoryGentleCleanser},
	"洁面":   {domain.CategoryCleanser, domain.CategoryGentleCleanser},
	"温和洁面": {domain.CategoryGentleCleanser},
	"爽肤水":  {domain.CategoryToner},
	"化妆水":  {domain.CategoryToner},
	"精华":   {domain.CategorySerum},
	"精华液":  {domain.CategorySerum},
	"保湿霜":  {domain.CategoryHydratingMoisturizer, domain.CategoryMoisturizer},
	"面霜":   {domain.CategoryMoisturizer},
	"乳液":   {domain.CategoryMoisturizer, domain.CategoryHydrator},
	"补水":   {domain.CategoryHydrator, domain.CategoryHydratingMoisturizer},
	"祛痘产品": {domain.CategoryTargetedAcneTreatment},
	"祛痘精华": {domain.CategoryTargetedAcneTreatment, domain.CategorySerum},
	"功效护理": {domain.CategoryTargetedTreatment},
	"去角质":  {domain.CategoryExfoliant},
	"防晒霜":  {domain.CategorySunscreen},
	"防晒":   {domain.CategorySunscreen},
	"眼霜":   {domain.CategoryEyeCare},
	"面膜":   {domain.CategoryMask},
	"润唇膏":  {domain.CategoryLipCare},
	"洗发水":  {domain.CategoryShampoo},
	"护发素":  {domain.CategoryConditioner},
	"头皮护理": {domain.CategoryScalpTreatment},
	"发膜":   {domain.CategoryHairMask},
	"护发精油": {domain.CategoryHairOil},
}

// traditionalChineseAliases covers labels the analysis emits in zh-Hant
var traditionalChineseAliases = map[string][]string{
	"潔面乳":  {domain.CategoryCleanser, domain.CategoryGentleCleanser},
	"洗面乳":  {domain.CategoryCleanser, domain.CategoryGentleCleanser},
	"溫和潔面": {domain.CategoryGentleCleanser},
	"化妝水":  {domain.CategoryToner},
	"精華液":  {domain.CategorySerum},
	"保濕霜":  {domain.CategoryHydratingMoisturizer, domain.CategoryMoisturizer},
	"乳霜":   {domain.CategoryMoisturizer},
	"祛痘產品": {domain.CategoryTargetedAcneTreatment},
	"去角質":  {domain.CategoryExfoliant},
	"防曬霜":  {domain.CategorySunscreen},
	"防曬":   {domain.CategorySunscreen},
	"眼部護理": {domain.CategoryEyeCare},
	"護唇膏":  {domain.CategoryLipCare},
	"洗髮精":  {domain.CategoryShampoo},
	"洗髮水":  {domain.CategoryShampoo},
	"護髮素":  {domain.CategoryConditioner},
	"頭皮護理": {domain.CategoryScalpTreatment},
	"髮膜":   {domain.CategoryHairMask},
	"護髮精油": {domain.CategoryHairOil},
}

// DefaultLocaleTables returns copies of the built-in alias tables, English
// first
func DefaultLocaleTables() []LocaleTable {
	return []LocaleTable{
		{
			Tag:          language.English,
			Aliases:      copyAliases(englishAliases),
			EmptyMessage: "No matching products found",
		},
		{
			Tag:          language.SimplifiedChinese,
			Aliases:      copyAliases(simplifiedChineseAliases),
			EmptyMessage: "未找到合适的产品",
		},
		{
			Tag:          language.TraditionalChinese,
			Aliases:      copyAliases(traditionalChineseAliases),
			EmptyMessage: "未找到合適的產品",
		},
	}
}

func copyAliases(aliases map[string][]string) map[string][]string {
	out := make(map[string][]string, len(aliases))
	for label, categories := range aliases {
		out[label] = append([]string(nil), categories...)
	}
	return out
}
