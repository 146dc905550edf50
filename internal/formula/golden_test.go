package formula

// Reference traces captured from a known-good run, indices chosen to cover the
// first row, a mid-row point and a point deep into the buffer.
var goldenTraces = []struct {
	id   int
	t    float64
	i    int
	x, y float64
}{
	{1, 0.0, 0, 209.94976445740122, 319.19643580488446},
	{1, 0.0, 1, 209.23200234581176, 319.7861998850419},
	{1, 0.0, 2, 208.67826154823507, 320.18976348380886},
	{1, 0.0, 137, 208.40197814263774, 311.6526960580517},
	{1, 0.0, 4321, 272.4115838001409, 259.8197362727128},
	{1, 0.3, 0, 234.12139351183632, 299.0069876121361},
	{1, 0.3, 1, 233.84856940599406, 297.91922493085815},
	{1, 0.3, 2, 233.46355890349344, 296.55735595548947},
	{1, 0.3, 137, 225.65094360775348, 295.0007736819383},
	{1, 0.3, 4321, 176.15069315191062, 191.59100007554423},
	{2, 0.0, 0, 132.29184376836855, 214.42165073607404},
	{2, 0.0, 1, 132.33553517879068, 214.23135899092952},
	{2, 0.0, 2, 132.45386386103814, 213.85166347373175},
	{2, 0.0, 137, 139.59954732595205, 185.57993214422876},
	{2, 0.0, 4321, 251.70312119154147, 90.06349164059132},
	{2, 0.3, 0, 191.6875545069875, 197.85367913229143},
	{2, 0.3, 1, 191.93368942789587, 197.8269607983041},
	{2, 0.3, 2, 192.4575712454726, 197.8147137667251},
	{2, 0.3, 137, 233.2018885680958, 192.1303696267326},
	{2, 0.3, 4321, 221.44855065446097, 77.33441374081296},
	{3, 0.0, 0, 177.86615731233707, 83.97099485935908},
	{3, 0.0, 1, 179.86134192523903, 83.61092603993185},
	{3, 0.0, 2, 186.39736425263604, 81.36252681556734},
	{3, 0.0, 137, 209.2395865101496, 55.14722531920603},
	{3, 0.0, 4321, 248.2071681870862, 80.2326156325619},
	{3, 0.3, 0, 240.0041077412478, 188.8527080861206},
	{3, 0.3, 1, 240.8552686200399, 189.68718222913574},
	{3, 0.3, 2, 243.1905911836506, 191.51275109467508},
	{3, 0.3, 137, 250.5114960805, 183.17187858993117},
	{3, 0.3, 4321, 191.16319437519778, 268.15574108854327},
	{4, 0.0, 0, 218.35627578091078, 313.07413043713814},
	{4, 0.0, 1, 218.17358914799559, 313.31333761528276},
	{4, 0.0, 2, 218.02726811811178, 313.49594173383275},
	{4, 0.0, 137, 232.34292810430588, 285.67803263434865},
	{4, 0.0, 4321, 186.8493422698656, 202.03725720302583},
	{4, 0.3, 0, 207.5855448933735, 286.4938581214961},
	{4, 0.3, 1, 207.5841462039987, 286.40808527297514},
	{4, 0.3, 2, 207.58393205402726, 286.31479594969704},
	{4, 0.3, 137, 214.15986152961065, 271.410918944534},
	{4, 0.3, 4321, 166.08618462275564, 193.2488153138226},
	{5, 0.0, 0, 307.5915576276595, 250.18037804213944},
	{5, 0.0, 1, 308.4013330960122, 251.49286311822445},
	{5, 0.0, 2, 310.74464744580956, 255.32298347399055},
	{5, 0.0, 137, 268.2517687123602, 287.8184074358233},
	{5, 0.0, 4321, 235.94669065819903, 279.70045655320405},
	{5, 0.3, 0, 130.90964712344078, 322.3888791690391},
	{5, 0.3, 1, 129.87192998724743, 322.09755366941283},
	{5, 0.3, 2, 126.70521956319679, 321.40419882917934},
	{5, 0.3, 137, 118.3884159981143, 253.46505687543825},
	{5, 0.3, 4321, 117.20332829288463, 214.187870913993},
	{6, 0.0, 0, 260.5791495375147, 222.25719441059744},
	{6, 0.0, 1, 262.2738011548652, 222.37640332741947},
	{6, 0.0, 2, 263.83539270605183, 222.4248230671052},
	{6, 0.0, 137, 283.58076554846616, 208.48942069380828},
	{6, 0.0, 4321, 268.6123793031731, 242.58181575633301},
	{6, 0.3, 0, 220.2081529338961, 212.45032085837724},
	{6, 0.3, 1, 220.4155816461214, 212.98946991740206},
	{6, 0.3, 2, 220.6842134414737, 213.58432112807418},
	{6, 0.3, 137, 226.6194546406335, 245.15968519794367},
	{6, 0.3, 4321, 208.96375919656808, 205.53638340730095},
	{7, 0.0, 0, 156.18932942882336, 132.42436873787375},
	{7, 0.0, 1, 155.39478773841606, 136.85903515830998},
	{7, 0.0, 2, 153.96110870001232, 140.92048534114707},
	{7, 0.0, 137, 217.1617105392806, 147.99900927698027},
	{7, 0.0, 4321, 203.09369549954613, 113.27022333203118},
	{7, 0.3, 0, 168.2545774185138, 131.30062182695593},
	{7, 0.3, 1, 170.06692581526463, 134.31304221859318},
	{7, 0.3, 2, 171.71279437472356, 138.03456067368055},
	{7, 0.3, 137, 226.01383191875124, 179.18368535342947},
	{7, 0.3, 4321, 212.37887134801275, 72.94768114658473},
	{8, 0.0, 0, 129.59113007978462, 295.63338222123286},
	{8, 0.0, 1, 129.5321948284869, 290.7422558799382},
	{8, 0.0, 2, 129.2032043346423, 283.6717449433555},
	{8, 0.0, 137, 230.33419696209853, 67.98213287190438},
	{8, 0.0, 4321, 216.69660342865842, 80.95289476346107},
	{8, 0.3, 0, 131.89338950726503, 249.9500983745304},
	{8, 0.3, 1, 133.01141015868018, 244.74410245660494},
	{8, 0.3, 2, 134.55427713053368, 237.56889651289768},
	{8, 0.3, 137, 231.7090941232537, 111.22796316432459},
	{8, 0.3, 4321, 218.36279117543341, 123.39124802538126},
}
