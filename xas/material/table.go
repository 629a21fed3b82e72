package material

// Built-in materials with nominal densities (g/cm³), mirrored from the xraydb
// materials collection. Names are stored lowercase; Find matches
// case-insensitively.
var materials = []Material{
	{"hydrogen", "H", 0.0000899},
	{"helium", "He", 0.0001786},
	{"nitrogen", "N", 0.00125},
	{"oxygen", "O", 0.001429},
	{"neon", "Ne", 0.0009002},
	{"argon", "Ar", 0.001784},
	{"krypton", "Kr", 0.003749},
	{"xenon", "Xe", 0.005894},
	{"methane", "CH4", 0.000657},
	{"carbon dioxide", "CO2", 0.001562},
	{"water", "H2O", 1.0},
	{"ethanol", "C2H5OH", 0.789},
	{"acetone", "C3H6O", 0.785},
	{"methanol", "CH3OH", 0.791},
	{"isopropanol", "C3H8O", 0.803},
	{"toluene", "C7H8", 0.867},
	{"benzene", "C6H6", 0.877},
	{"butanol", "C4H10O", 0.810},
	{"chlorobenzene", "C6H5Cl", 1.106},
	{"cyclohexane", "C6H12", 0.774},
	{"dimethyl sulfoxide", "C2H6OS", 1.09},
	{"ethylene glycol", "C2H6O2", 1.115},
	{"glycerin", "C3H8O3", 1.261},
	{"heptane", "C7H16", 0.684},
	{"hexane", "C6H14", 0.659},
	{"kapton", "C22H10N2O5", 1.42},
	{"polyimide", "C22H10N2O5", 1.42},
	{"polypropylene", "C3H6", 0.86},
	{"pmma", "C5H8O2", 1.18},
	{"polycarbonate", "C16H14O3", 1.2},
	{"mylar", "C10H8O4", 1.4},
	{"teflon", "C2F4", 2.2},
	{"parylene-c", "C8H7Cl", 1.29},
	{"parylene-n", "C8H8", 1.11},
	{"peek", "C19H14O3", 1.32},
	{"boron nitride", "BN", 2.1},
	{"silicon nitride", "Si3N4", 3.17},
	{"yag", "Y3Al5O12", 4.56},
	{"sapphire", "Al2O3", 4.0},
	{"fluorite", "CaF2", 3.18},
	{"fayalite", "Fe2SiO4", 4.392},
	{"forsterite", "Mg2SiO4", 3.27},
	{"wustite", "FeO", 5.7},
	{"hematite", "Fe2O3", 5.24},
	{"magnetite", "Fe3O4", 5.17},
	{"salt", "NaCl", 2.165},
	{"silica", "SiO2", 2.2},
	{"quartz", "SiO2", 2.65},
	{"cristobalite", "SiO2", 2.27},
	{"rutile", "TiO2", 4.23},
	{"galena", "PbS", 7.60},
	{"cadmium telluride", "CdTe", 5.85},
	{"gallium arsenide", "GaAs", 5.318},
	{"diamond carbon", "C", 3.52},
	{"graphite carbon", "C", 2.23},
	{"beryllium", "Be", 1.85},
	{"aluminum", "Al", 2.70},
	{"silicon", "Si", 2.329},
	{"titanium", "Ti", 4.506},
	{"chromium", "Cr", 7.15},
	{"iron", "Fe", 7.88},
	{"cobalt", "Co", 8.90},
	{"nickel", "Ni", 8.908},
	{"copper", "Cu", 8.96},
	{"zinc", "Zn", 7.14},
	{"gallium", "Ga", 5.91},
	{"germanium", "Ge", 5.323},
	{"molybdenum", "Mo", 10.28},
	{"ruthenium", "Ru", 12.45},
	{"rhodium", "Rh", 12.41},
	{"palladium", "Pd", 12.02},
	{"silver", "Ag", 10.49},
	{"indium", "In", 7.31},
	{"tin", "Sn", 7.265},
	{"tantalum", "Ta", 16.69},
	{"tungsten", "W", 19.25},
	{"rhenium", "Re", 21.02},
	{"osmium", "Os", 22.59},
	{"iridium", "Ir", 22.56},
	{"platinum", "Pt", 21.45},
	{"gold", "Au", 19.3},
	{"mercury", "Hg", 13.534},
	{"lead", "Pb", 11.34},
	{"bismuth", "Bi", 9.78},
	{"uranium", "U", 19.1},
	{"zirconium", "Zr", 6.5},
}
