package region

// Lookup resolves an INSEE region code to an internal region identifier.
// Deployments backed by a regions table supply their own implementation;
// the built-in Catalog serves everything else.
type Lookup interface {
	FindByCode(code string) (int, bool)
}

// Catalog is the built-in Lookup. It recognizes the metropolitan and
// overseas INSEE region codes and uses the numeric code itself as the
// identifier.
type Catalog struct{}

func (Catalog) FindByCode(code string) (int, bool) {
	id, ok := regionIDs[code]
	return id, ok
}

var regionIDs = map[string]int{
	"01": 1,  // Guadeloupe
	"02": 2,  // Martinique
	"03": 3,  // Guyane
	"04": 4,  // La Réunion
	"06": 6,  // Mayotte
	"11": 11, // Île-de-France
	"24": 24, // Centre-Val de Loire
	"27": 27, // Bourgogne-Franche-Comté
	"28": 28, // Normandie
	"32": 32, // Hauts-de-France
	"44": 44, // Grand Est
	"52": 52, // Pays de la Loire
	"53": 53, // Bretagne
	"75": 75, // Nouvelle-Aquitaine
	"76": 76, // Occitanie
	"84": 84, // Auvergne-Rhône-Alpes
	"93": 93, // Provence-Alpes-Côte d'Azur
	"94": 94, // Corse
}

// departmentRegions maps a department code to its INSEE region code.
var departmentRegions = map[string]string{
	// Auvergne-Rhône-Alpes
	"01": "84", "03": "84", "07": "84", "15": "84", "26": "84", "38": "84",
	"42": "84", "43": "84", "63": "84", "69": "84", "73": "84", "74": "84",
	// Bourgogne-Franche-Comté
	"21": "27", "25": "27", "39": "27", "58": "27", "70": "27", "71": "27",
	"89": "27", "90": "27",
	// Bretagne
	"22": "53", "29": "53", "35": "53", "56": "53",
	// Centre-Val de Loire
	"18": "24", "28": "24", "36": "24", "37": "24", "41": "24", "45": "24",
	// Corse
	"2A": "94", "2B": "94",
	// Grand Est
	"08": "44", "10": "44", "51": "44", "52": "44", "54": "44", "55": "44",
	"57": "44", "67": "44", "68": "44", "88": "44",
	// Hauts-de-France
	"02": "32", "59": "32", "60": "32", "62": "32", "80": "32",
	// Île-de-France
	"75": "11", "77": "11", "78": "11", "91": "11", "92": "11", "93": "11",
	"94": "11", "95": "11",
	// Normandie
	"14": "28", "27": "28", "50": "28", "61": "28", "76": "28",
	// Nouvelle-Aquitaine
	"16": "75", "17": "75", "19": "75", "23": "75", "24": "75", "33": "75",
	"40": "75", "47": "75", "64": "75", "79": "75", "86": "75", "87": "75",
	// Occitanie
	"09": "76", "11": "76", "12": "76", "30": "76", "31": "76", "32": "76",
	"34": "76", "46": "76", "48": "76", "65": "76", "66": "76", "81": "76",
	"82": "76",
	// Pays de la Loire
	"44": "52", "49": "52", "53": "52", "72": "52", "85": "52",
	// Provence-Alpes-Côte d'Azur
	"04": "93", "05": "93", "06": "93", "13": "93", "83": "93", "84": "93",
	// Outre-mer
	"971": "01", "972": "02", "973": "03", "974": "04", "976": "06",
}

// cityDepartments pairs well-known city names with their department. Order
// matters for prefix collisions: "toulouse" must be probed before
// "toulon". Accented entries carry a plain-spelling twin because upstream
// labels are inconsistent about accents. Cities whose names hide inside
// everyday words ("tours" in "alentours", "angers" in "étrangers") are
// left out on purpose.
var cityDepartments = []struct {
	City string
	Dept string
}{
	{"paris", "75"},
	{"marseille", "13"},
	{"lyon", "69"},
	{"toulouse", "31"},
	{"nice", "06"},
	{"nantes", "44"},
	{"montpellier", "34"},
	{"strasbourg", "67"},
	{"bordeaux", "33"},
	{"lille", "59"},
	{"rennes", "35"},
	{"reims", "51"},
	{"toulon", "83"},
	{"saint-étienne", "42"},
	{"saint-etienne", "42"},
	{"grenoble", "38"},
	{"dijon", "21"},
	{"nîmes", "30"},
	{"nimes", "30"},
	{"clermont-ferrand", "63"},
	{"le havre", "76"},
	{"aix-en-provence", "13"},
	{"brest", "29"},
	{"limoges", "87"},
	{"villeurbanne", "69"},
	{"amiens", "80"},
	{"metz", "57"},
	{"besançon", "25"},
	{"besancon", "25"},
	{"orléans", "45"},
	{"orleans", "45"},
	{"rouen", "76"},
	{"mulhouse", "68"},
	{"caen", "14"},
	{"nancy", "54"},
}
