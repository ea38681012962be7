package usecase

import (
	"strings"
	"time"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/shopspring/decimal"
)

// Reference catalog used to seed an empty store on first lookup. Prices are
// launch MRPs in INR.

var seedBrands = map[entities.DeviceType][]string{
	entities.DeviceTypePhone: {
		"Apple", "Google", "OnePlus", "Samsung", "Xiaomi",
		"OPPO", "Vivo", "Realme", "Nothing", "Motorola",
	},
	entities.DeviceTypeLaptop: {
		"Apple", "Dell", "HP", "Lenovo", "Acer",
		"ASUS", "MSI", "Razer", "Microsoft", "LG",
	},
	entities.DeviceTypeTablet: {
		"Apple", "Samsung", "Microsoft", "Lenovo",
		"Xiaomi", "HUAWEI", "Realme", "OPPO",
	},
	entities.DeviceTypeTV: {
		"Samsung", "LG", "Sony", "TCL", "Hisense",
		"OnePlus", "Xiaomi", "Vu", "Panasonic",
	},
	entities.DeviceTypeConsole: {
		"Sony", "Microsoft", "Nintendo",
		"Sega", "Atari", "Steam",
	},
}

type modelSpec struct {
	name        string
	releaseYear int
	basePrice   decimal.Decimal
}

func spec(name string, yearsAgo int, price int64) modelSpec {
	return modelSpec{
		name:        name,
		releaseYear: time.Now().Year() - yearsAgo,
		basePrice:   decimal.NewFromInt(price),
	}
}

// seedModelSpecs returns the seed models for one brand within one device
// type. Brands without an explicit entry get a generic tiered lineup so every
// seeded brand is selectable.
func seedModelSpecs(dt entities.DeviceType, brandName string) []modelSpec {
	brand := strings.TrimSpace(brandName)

	switch dt {
	case entities.DeviceTypePhone:
		switch brand {
		case "Apple":
			return []modelSpec{
				spec("iPhone 15 Pro Max", 0, 159900), spec("iPhone 15 Pro", 0, 134900),
				spec("iPhone 15", 0, 79900), spec("iPhone 14 Pro", 1, 119900),
				spec("iPhone 14", 1, 69900), spec("iPhone 13", 2, 59900),
				spec("iPhone 12", 3, 49900),
			}
		case "Samsung":
			return []modelSpec{
				spec("Galaxy S24 Ultra", 0, 129900), spec("Galaxy S24+", 0, 99900),
				spec("Galaxy S24", 0, 79900), spec("Galaxy S23 Ultra", 1, 124900),
				spec("Galaxy S23", 1, 74900), spec("Galaxy A54", 1, 38900),
			}
		case "Google":
			return []modelSpec{
				spec("Pixel 8 Pro", 0, 106900), spec("Pixel 8", 0, 75900),
				spec("Pixel 7a", 1, 39900), spec("Pixel 7", 1, 59900),
				spec("Pixel 6a", 2, 29900),
			}
		case "OnePlus":
			return []modelSpec{
				spec("12", 0, 64900), spec("11", 1, 56900),
				spec("Nord 3", 1, 33900), spec("10 Pro", 2, 49900),
			}
		case "Nothing":
			return []modelSpec{spec("Phone (2)", 0, 44900), spec("Phone (1)", 1, 32900)}
		default:
			return genericLineup(brand, 54900, 32900, 18900)
		}

	case entities.DeviceTypeLaptop:
		switch brand {
		case "Apple":
			return []modelSpec{
				spec(`MacBook Pro 16" M3 Max`, 0, 399900), spec(`MacBook Pro 14" M3 Pro`, 0, 249900),
				spec(`MacBook Air 15" M2`, 1, 154900), spec(`MacBook Air 13" M1`, 2, 99900),
			}
		case "ASUS":
			return []modelSpec{
				spec("ROG Zephyrus", 0, 224900), spec("TUF Gaming", 0, 124900),
				spec("VivoBook Pro", 1, 89900), spec("VivoBook", 1, 54900),
			}
		case "MSI":
			return []modelSpec{
				spec("Titan", 0, 399900), spec("Raider", 0, 299900),
				spec("Stealth", 1, 199900), spec("Katana", 1, 99900),
			}
		default:
			return genericLineup(brand, 129900, 79900, 49900)
		}

	case entities.DeviceTypeTablet:
		switch brand {
		case "Apple":
			return []modelSpec{
				spec(`iPad Pro 12.9" M2`, 0, 119900), spec(`iPad Pro 11" M2`, 0, 89900),
				spec("iPad Air M1", 1, 59900), spec("iPad 10th Gen", 2, 44900),
			}
		case "Samsung":
			return []modelSpec{
				spec("Galaxy Tab S9 Ultra", 0, 108900), spec("Galaxy Tab S9+", 0, 89900),
				spec("Galaxy Tab S9", 0, 74900), spec("Galaxy Tab S8", 1, 58900),
			}
		default:
			return genericLineup(brand, 45900, 28900, 15900)
		}

	case entities.DeviceTypeTV:
		prices, ok := tvSeedPrices[brand]
		if !ok {
			prices = [4]int64{99900, 79900, 59900, 39900}
		}
		return []modelSpec{
			spec(brand+` 75" Premium OLED`, 0, prices[0]),
			spec(brand+` 65" OLED`, 0, prices[1]),
			spec(brand+` 55" QLED`, 1, prices[2]),
			spec(brand+` 50" LED`, 2, prices[3]),
		}

	case entities.DeviceTypeConsole:
		switch brand {
		case "Sony":
			return []modelSpec{
				spec("PlayStation 5 Pro", 0, 59900), spec("PlayStation 5", 2, 49900),
				spec("PlayStation 4 Pro", 6, 29900),
			}
		case "Microsoft":
			return []modelSpec{spec("Xbox Series X", 2, 49900), spec("Xbox Series S", 2, 29900)}
		case "Nintendo":
			return []modelSpec{
				spec("Switch OLED", 3, 34900), spec("Switch", 5, 29900), spec("Switch Lite", 4, 19900),
			}
		case "Steam":
			return []modelSpec{spec("Steam Deck OLED", 0, 54900), spec("Steam Deck LCD", 1, 39900)}
		}
	}
	return nil
}

// 75"/65"/55"/50" launch prices per TV brand.
var tvSeedPrices = map[string][4]int64{
	"Samsung": {249900, 199900, 149900, 99900},
	"LG":      {239900, 189900, 139900, 89900},
	"Sony":    {299900, 249900, 189900, 129900},
	"OnePlus": {149900, 119900, 89900, 59900},
	"TCL":     {99900, 79900, 59900, 39900},
	"Xiaomi":  {89900, 69900, 49900, 34900},
	"Vu":      {79900, 59900, 44900, 29900},
}

func genericLineup(brand string, flagship, mid, budget int64) []modelSpec {
	return []modelSpec{
		spec(brand+" Flagship", 0, flagship),
		spec(brand+" Mid-range", 1, mid),
		spec(brand+" Budget", 1, budget),
	}
}
