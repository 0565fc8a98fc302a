package domain

// Static reference tables. Loaded once at process start and treated as
// immutable read-only configuration.

// Salutations accepted on party and contact-person records.
var Salutations = []string{"Mr.", "Mrs.", "Ms.", "Miss.", "Dr."}

// CustomerTypes accepted on customer records.
var CustomerTypes = []string{"Business", "Individual"}

// GSTTreatments accepted when the tax type is GST.
var GSTTreatments = []string{
	"Registered Business - Regular",
	"Registered Business - Composition",
	"Unregistered Business",
	"Consumer",
	"Overseas",
	"Special Economic Zone",
	"Deemed Export",
	"Tax Deductor",
	"SEZ Developer",
}

// GSTTreatmentsRequiringGSTIN are the treatments that additionally require a
// GSTIN/UIN value.
var GSTTreatmentsRequiringGSTIN = []string{
	"Registered Business - Regular",
	"Registered Business - Composition",
	"Special Economic Zone",
	"Deemed Export",
	"Tax Deductor",
	"SEZ Developer",
}

// VATTreatments accepted when the tax type is VAT.
var VATTreatments = []string{
	"VAT Registered",
	"VAT Not Registered",
	"GCC VAT Registered",
	"GCC VAT Not Registered",
	"Non GCC",
}

// CountryStates maps each supported country to its valid state/region list.
var CountryStates = map[string][]string{
	"India": {
		"Andaman and Nicobar Islands", "Andhra Pradesh", "Arunachal Pradesh",
		"Assam", "Bihar", "Chandigarh", "Chhattisgarh",
		"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Goa", "Gujarat",
		"Haryana", "Himachal Pradesh", "Jammu and Kashmir", "Jharkhand",
		"Karnataka", "Kerala", "Ladakh", "Lakshadweep", "Madhya Pradesh",
		"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha",
		"Puducherry", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
		"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	},
	"United Arab Emirates": {
		"Abu Dhabi", "Ajman", "Dubai", "Fujairah", "Ras Al Khaimah",
		"Sharjah", "Umm Al Quwain",
	},
	"Saudi Arabia": {
		"Al Bahah", "Al Jawf", "Al Madinah", "Al Qassim", "Asir",
		"Eastern Province", "Hail", "Jazan", "Makkah", "Najran",
		"Northern Borders", "Riyadh", "Tabuk",
	},
}

// ValidState reports whether state is in country's state list.
func ValidState(country, state string) bool {
	for _, s := range CountryStates[country] {
		if s == state {
			return true
		}
	}
	return false
}

// Contains reports whether value is present in list. Shared by the enum
// membership rules.
func Contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
