package spectrum

// noiseTable is the 512-entry complex noise table V, stored as real and
// imaginary parts.
// Source: ISO/IEC 14496-3, 4.6.18.8 (noise table)
var noiseTable = [512][2]float32{
	{-0.999481559, -0.594834149}, {0.971134543, -0.675285161},
	{0.141300514, -0.950909853}, {-0.470054954, -0.373405486},
	{0.807050645, 0.296536684}, {-0.389814794, 0.895726085},
	{-0.0105304988, -0.669590592}, {-0.912663698, -0.115229383},
	{0.548404217, 0.752213657}, {0.400092542, -0.989293993},
	{-0.998679757, -0.88147068}, {-0.955310762, 0.909087598},
	{-0.457259327, -0.567163229}, {-0.729296744, -0.98008275},
	{0.75622803, 0.209503293}, {0.0706944242, -0.782478988},
	{0.744962513, -0.911690056}, {-0.964401841, -0.947399199},
	{0.304246306, -0.494382679}, {0.665650308, 0.646529377},
	{0.916970074, 0.175140977}, {-0.707749188, 0.525486529},
	{-0.700514138, -0.453400284}, {-0.994965136, -0.900719106},
	{0.981644928, -0.77463156}, {-0.546715796, -0.0257092845},
	{-0.0168962907, 0.0028750645}, {-0.861103475, 0.425485849},
	{-0.988929808, -0.8788113}, {0.517566264, 0.669267833},
	{-0.996350288, -0.581077278}, {-0.999693692, 0.983699918},
	{0.552662611, 0.594490588}, {0.345811784, 0.948794186},
	{0.626642108, -0.744029701}, {-0.771497011, -0.338836581},
	{-0.915922463, 0.0368790142}, {-0.762854934, -0.9137187},
	{0.797883391, -0.931809723}, {0.544730783, -0.119192064},
	{-0.856392801, 0.424298555}, {-0.928824008, 0.278718084},
	{-0.117083713, -0.99800843}, {0.213567495, -0.907162964},
	{-0.761916935, 0.997681201}, {0.981110454, -0.958544612},
	{-0.859132707, 0.957665682}, {-0.933072448, 0.494317591},
	{0.304857552, -0.705400348}, {0.852896512, 0.467661321},
	{0.913280845, -0.998395979}, {-0.0589019991, 0.707418263},
	{0.283986866, 0.34633556}, {0.952581644, -0.548934162},
	{-0.785663247, -0.755685389}, {-0.957894981, -0.204231948},
	{0.824111581, 0.966546178}, {-0.651854455, -0.887349904},
	{-0.936436057, 0.998707891}, {0.914271593, -0.98290503},
	{-0.703956842, 0.587967992}, {0.00563771976, 0.61768198},
	{0.890650511, 0.527833521}, {-0.686837077, 0.808069468},
	{0.721653402, -0.692598581}, {-0.629282475, 0.136270374},
	{0.299384356, -0.460513294}, {-0.91781956, -0.740127146},
	{0.992987156, 0.408166111}, {0.823682964, -0.740360498},
	{-0.985128343, -0.999723315}, {-0.959153712, -0.992377996},
	{-0.214111269, -0.934248209}, {-0.688214779, -0.268923074},
	{0.918519974, 0.0935822874}, {-0.960627675, 0.360990942},
	{0.516461849, -0.713733315}, {0.611307204, 0.469501406},
	{0.473361284, -0.273331791}, {0.909983099, 0.967156649},
	{0.448448002, 0.992115736}, {0.666148901, 0.965901732},
	{0.749222398, -0.898798585}, {-0.995715857, 0.527855217},
	{0.974010825, -0.168558702}, {0.726837456, -0.480607748},
	{0.954321921, 0.688496053}, {-0.729622066, -0.766084433},
	{-0.85359478, 0.887381256}, {-0.814124286, -0.97480768},
	{-0.879307747, 0.747483075}, {-0.71573329, -0.985706091},
	{0.835242987, 0.837025344}, {-0.480860651, -0.988485038},
	{0.971391261, 0.800936222}, {0.519928277, 0.802476287},
	{-0.00848591235, -0.766701281}, {-0.702943742, 0.553599119},
	{-0.958944261, -0.432655036}, {0.970792532, 0.0932585746},
	{-0.92404294, 0.855077028}, {-0.695064723, 0.986334145},
	{0.265592039, 0.733143091}, {0.280384421, 0.145379141},
	{-0.741381228, 0.993103385}, {-0.0175279602, -0.826166332},
	{-0.551267743, -0.988985419}, {0.979609013, -0.940214455},
	{-0.991963089, 0.670190156}, {-0.676849306, 0.126314923},
	{0.0914003924, -0.205377311}, {-0.71658963, -0.977882028},
	{0.810146391, 0.537226498}, {0.406169921, -0.264690071},
	{-0.67680186, 0.945020497}, {0.868497729, -0.18333599},
	{-0.995003819, -0.0263412204}, {0.843291879, 0.104069576},
	{-0.0921596885, 0.695400119}, {0.999561727, -0.123585418},
	{-0.797327816, -0.915825248}, {0.963499725, 0.966404557},
	{-0.799427807, 0.643239021}, {-0.115660399, 0.28587845},
	{-0.399229556, 0.941296041}, {0.990891993, -0.920626283},
	{0.286312848, -0.910350442}, {-0.833027244, -0.673304081},
	{0.954044461, 0.491627663}, {-0.0644986331, 0.0325056091},
	{-0.995750546, 0.423897833}, {-0.655011415, 0.825461149},
	{-0.812544405, -0.516272366}, {-0.996463716, 0.844905317},
	{0.00287840609, 0.647682607}, {0.701769888, -0.204530284},
	{0.963618815, 0.407069683}, {-0.688837588, 0.913389564},
	{-0.348755866, 0.714722931}, {0.919800818, 0.665074527},
	{-0.990090489, 0.858680189}, {0.688657939, 0.556603193},
	{-0.994844019, -0.200525597}, {0.942145109, -0.996964276},
	{-0.674146295, 0.495482206}, {-0.47339353, -0.8590433},
	{0.143236518, -0.94145596}, {-0.292682946, 0.0575922504},
	{0.437938601, -0.789049685}, {-0.363451272, 0.648744345},
	{-0.0875060484, 0.976869464}, {-0.964952707, -0.539603055},
	{0.55526942, 0.788915217}, {0.73538214, 0.964520752},
	{-0.308897734, -0.806643903}, {0.035749957, -0.973256171},
	{0.987206876, 0.484091341}, {-0.816892982, -0.908277035},
	{0.678668618, 0.812845051}, {-0.158085704, 0.852795541},
	{0.80723393, -0.247174188}, {0.477887571, -0.463331491},
	{0.963675559, 0.384867489}, {-0.991438746, -0.24945277},
	{0.830818772, -0.947808504}, {-0.587531924, 0.0129077239},
	{0.955381095, -0.855570495}, {-0.964909196, -0.640209734},
	{-0.973271012, 0.123781279}, {0.91400367, 0.579724729},
	{-0.999258399, 0.710848451}, {-0.868759036, -0.202916995},
	{-0.262400359, -0.682645559}, {-0.246644124, -0.876422703},
	{0.0241627581, 0.271929145}, {0.820686221, -0.850877881},
	{0.885473728, -0.896368027}, {-0.181730777, -0.261521459},
	{0.093554765, 0.548451245}, {-0.546684146, 0.959807754},
	{0.370509893, -0.599101424}, {-0.703735948, 0.912276685},
	{-0.346007854, -0.99441427}, {-0.687744796, -0.30238837},
	{-0.268432915, 0.831156671}, {0.490723342, -0.453597099},
	{0.389759928, 0.955153584}, {-0.977571249, 0.0530589446},
	{-0.173255533, -0.927706718}, {0.999480367, 0.582855463},
	{-0.649462461, 0.686455071}, {-0.120169207, -0.571473241},
	{-0.589474559, -0.348471314}, {-0.418151408, 0.162764221},
	{0.998856485, 0.111360952}, {-0.566496134, -0.904948652},
	{0.941380203, 0.352819175}, {-0.757250786, 0.53650552},
	{0.205419734, -0.944351435}, {0.999803722, 0.798359156},
	{0.290782779, 0.353937775}, {-0.628587723, 0.387656927},
	{0.434409052, -0.985463321}, {-0.982985854, 0.210215241},
	{0.195130289, -0.94239831}, {-0.954766631, 0.983645558},
	{0.933796346, -0.708819926}, {-0.852354109, -0.0834234804},
	{-0.864250958, -0.457950264}, {0.38879779, 0.972744286},
	{0.920451224, -0.624336541}, {0.891625345, 0.549509585},
	{-0.368343383, 0.96458298}, {0.938917637, -0.899683535},
	{0.992676556, -0.0375703424}, {-0.940634727, 0.413323373},
	{0.997402251, -0.16830495}, {-0.358994126, -0.466332257},
	{0.0523723736, -0.256403625}, {0.367035836, -0.386532664},
	{0.916531801, -0.305876285}, {0.690008044, 0.909521699},
	{-0.386587501, 0.99501574}, {-0.292508155, 0.374449939},
	{-0.601822019, 0.867796481}, {-0.974185884, 0.964685261},
	{0.884615719, 0.575084031}, {0.0519893318, 0.212696612},
	{-0.534996212, 0.972415566}, {-0.494295597, 0.981838644},
	{-0.989351451, -0.402491599}, {-0.980813801, -0.728568971},
	{-0.273381501, 0.999509215}, {0.063108027, -0.545395851},
	{-0.20461677, -0.142099783}, {0.662238419, 0.725285828},
	{-0.847643435, 0.0237231683}, {-0.890398622, 0.888665795},
	{0.959033072, 0.76744926}, {0.735041261, -0.037472032},
	{-0.317444354, -0.368341118}, {-0.341108263, 0.402112216},
	{0.478038847, -0.394232184}, {0.982991934, 0.0198979136},
	{-0.309630722, -0.180767208}, {0.999925911, -0.262818724},
	{-0.931497335, -0.983131647}, {0.999234736, -0.801429927},
	{-0.260241687, -0.759997606}, {-0.357125133, 0.192989632},
	{-0.998990834, 0.746451557}, {0.865571737, 0.555938661},
	{0.334080428, 0.86185956}, {0.990107358, 0.0460239761},
	{-0.666942716, -0.916436136}, {0.640167892, 0.156495303},
	{0.995705366, 0.458445847}, {-0.634314656, 0.210791171},
	{-0.0770684704, -0.895814359}, {0.985900879, 0.882417202},
	{0.800993323, -0.368518978}, {0.783681333, 0.455069989},
	{0.0870780647, 0.809389949}, {-0.868118823, 0.393473089},
	{-0.394665301, -0.668094337}, {0.978753269, -0.724678397},
	{-0.95038563, 0.895632207}, {0.170052394, 0.546830535},
	{-0.769107938, -0.962266147}, {0.997432828, 0.426971585},
	{0.954373837, 0.970023215}, {0.995789051, -0.541068256},
	{0.280582607, -0.853614211}, {0.852565229, -0.645676076},
	{-0.506085396, -0.65846014}, {-0.972107351, -0.230952129},
	{0.954240501, -0.992401481}, {-0.969265699, 0.73775655},
	{0.308721632, 0.415149599}, {-0.245238394, 0.632066309},
	{-0.33813265, -0.38661778}, {-0.0582682826, -0.0694077387},
	{-0.228984609, 0.970548511}, {-0.185099155, 0.475657642},
	{-0.104882382, -0.877699494}, {-0.718865871, 0.780309796},
	{0.997938752, 0.900413096}, {0.575633049, -0.910343349},
	{0.289096475, 0.963077843}, {0.421889991, 0.481486499},
	{0.933350503, -0.435370237}, {-0.970873773, 0.866364479},
	{0.367228717, 0.652916551}, {-0.810930252, 0.0877837017},
	{-0.262406021, -0.927740932}, {0.839964986, 0.558398485},
	{-0.999096155, -0.960246086}, {0.746494651, 0.121448934},
	{-0.747745931, -0.268980622}, {0.95781666, -0.790479243},
	{0.95472306, -0.0858877599}, {0.487083316, 0.999990404},
	{0.463320374, 0.109641261}, {-0.764970064, 0.892109275},
	{0.573973894, 0.352897048}, {0.753743172, 0.967052162},
	{-0.591744006, -0.894053698}, {0.750879049, -0.296126723},
	{-0.98607856, 0.250349104}, {-0.407610565, -0.900455713},
	{0.669292688, 0.986294925}, {-0.974636972, -0.00190223299},
	{0.901455104, 0.99781388}, {-0.872592866, 0.992335856},
	{-0.915294588, -0.156987071}, {-0.0330573879, -0.37205264},
	{0.0722305104, -0.88805002}, {0.994980097, 0.97094357},
	{-0.749049366, 0.999854863}, {0.0458522849, 0.998123348},
	{-0.890549541, -0.317919135}, {-0.837821424, 0.976376355},
	{0.334548056, -0.862315178}, {-0.997075796, 0.932379901},
	{-0.228275284, 0.1887476}, {0.672480464, -0.0364621133},
	{-0.0514653809, -0.925997019}, {0.999472976, 0.936252296},
	{0.669511259, 0.989058256}, {-0.996029556, -0.446547151},
	{0.821049035, 0.995407403}, {0.991865098, 0.720229983},
	{-0.652845919, 0.521867216}, {0.938854456, -0.748953104},
	{0.967352509, 0.908918142}, {-0.222259685, 0.571240306},
	{-0.44132784, -0.926888406}, {-0.856949747, 0.888445318},
	{0.917830408, -0.463568926}, {0.725569725, -0.998995543},
	{-0.997115791, 0.582115591}, {0.776389778, 0.94321835},
	{0.0771732405, 0.586383998}, {-0.560498297, 0.825223029},
	{0.983988941, 0.394674391}, {0.47546947, 0.686130464},
	{0.656750917, 0.183316365}, {0.0327337533, -0.749331117},
	{-0.386841446, 0.513373494}, {-0.973462701, -0.965493619},
	{-0.532821536, -0.914232671}, {0.998173118, 0.611335754},
	{-0.502544999, -0.888293386}, {0.0199587326, 0.852235138},
	{0.999303818, 0.94578898}, {0.829077661, -0.0632344261},
	{-0.586607099, 0.96840775}, {-0.175737366, -0.481669217},
	{0.834342897, -0.13023451}, {0.0594649129, 0.205110475},
	{0.815054834, -0.946859479}, {-0.449763805, 0.408945739},
	{-0.897464752, 0.998465776}, {0.396772563, -0.74854666},
	{-0.0758894831, 0.740962148}, {0.763431966, 0.417466283},
	{-0.744901061, 0.947259128}, {0.648801208, 0.413366616},
	{0.62319535, -0.930983126}, {0.422158182, -0.0771278739},
	{0.0270455405, -0.0541751795}, {0.800017715, 0.915421963},
	{-0.793518305, -0.362088978}, {0.638723612, 0.0812825263},
	{0.528905213, 0.600488722}, {0.742385507, 0.0449191518},
	{0.990961313, -0.194511831}, {-0.804123282, -0.885138154},
	{-0.646126151, 0.721986771}, {0.116577707, -0.836628318},
	{-0.95053184, -0.969399035}, {-0.622288704, 0.827672601},
	{0.0300447587, -0.997388959}, {-0.979872167, 0.365261286},
	{-0.999869823, -0.360216111}, {0.891106486, -0.978942513},
	{0.104079604, 0.773577929}, {0.959647357, -0.354358196},
	{0.508432329, 0.961076915}, {0.170063347, -0.768540263},
	{0.258726746, 0.998933017}, {-0.0111599872, 0.984960198},
	{-0.79598701, 0.971384108}, {-0.992647111, -0.995428205},
	{-0.998296618, 0.0187713876}, {-0.708010137, 0.336806864},
	{-0.704670548, 0.932727754}, {0.998460233, -0.987257481},
	{-0.633649707, -0.164735943}, {-0.162582174, -0.959391236},
	{-0.436455935, -0.94805032}, {-0.998484731, 0.962451696},
	{-0.167964593, -0.989875138}, {-0.879792273, -0.717257261},
	{0.441830993, -0.935689747}, {0.933101773, -0.99913311},
	{-0.939419329, -0.564093769}, {-0.885900021, 0.476245999},
	{0.999714613, -0.838899553}, {-0.753763855, 0.00814643409},
	{0.938876867, -0.112845279}, {0.851264358, 0.523492515},
	{0.397014201, 0.81779635}, {-0.370244652, -0.870716572},
	{-0.360248268, 0.346557349}, {-0.933888137, -0.844765425},
	{-0.652988017, -0.18439576}, {0.119603187, 0.998993456},
	{0.942925632, 0.831639051}, {0.750811458, -0.355332226},
	{0.567219794, -0.240768358}, {0.468577653, -0.30140233},
	{0.973123133, -0.995481908}, {-0.382999778, 0.985169113},
	{0.410257995, 0.0211673696}, {0.0963806212, 0.0441198424},
	{-0.852832496, 0.914755642}, {0.88866806, -0.99735266},
	{-0.482024282, -0.968056083}, {0.275725812, 0.58634752},
	{-0.65889132, 0.588356316}, {0.988380849, 0.999943495},
	{-0.206513494, 0.545930445}, {-0.62126416, -0.598936796},
	{0.203201056, -0.868791819}, {-0.977905512, 0.962908089},
	{0.11112535, 0.214847639}, {-0.413683385, 0.282168388},
	{0.241330385, 0.512943625}, {-0.663934112, -0.0824967995},
	{-0.536978304, -0.976499021}, {-0.972247362, 0.220813334},
	{0.873924792, -0.12796174}, {0.190503612, 0.0160261542},
	{-0.463534415, -0.952490389}, {-0.0706409663, -0.944798052},
	{-0.924440861, -0.104575902}, {-0.838225961, -0.0169504322},
	{0.75214684, -0.999556839}, {-0.421029985, 0.99720943},
	{-0.720947862, -0.35008961}, {0.788433135, 0.528513968},
	{0.973940253, -0.266959429}, {0.992064655, -0.570101202},
	{0.767896116, -0.765193582}, {-0.820024192, -0.735301793},
	{0.819249928, 0.996984243}, {-0.267198503, 0.689033687},
	{-0.433112592, 0.853218138}, {0.991949797, 0.918762505},
	{-0.806919992, -0.326275408}, {0.43080005, -0.219190955},
	{0.677094936, -0.954780757}, {0.561517715, -0.706938088},
	{0.108318627, -0.0862883702}, {0.912294149, -0.659873486},
	{-0.489728928, 0.562892437}, {-0.890336573, -0.716565669},
	{0.652694464, 0.659160078}, {0.674394786, -0.816843808},
	{-0.47770831, -0.167895555}, {-0.997159779, -0.935657859},
	{-0.90889591, 0.620343983}, {-0.0661862269, -0.238122165},
	{0.99430269, 0.188125551}, {0.97686404, -0.286645353},
	{0.948136508, -0.975066423}, {-0.954344988, -0.796079814},
	{-0.491047829, 0.328952134}, {0.998811722, 0.889939845},
	{0.504491687, -0.859950721}, {0.471628904, -0.186802045},
	{-0.620815814, 0.750006735}, {-0.438670158, 0.999980688},
	{0.986305654, -0.535789013}, {-0.615103602, -0.895150185},
	{-0.0384151749, -0.698888183}, {-0.301021576, -0.0766780898},
	{0.418812841, 0.0218809899}, {-0.86135453, 0.989474833},
	{0.672268629, -0.134943888}, {-0.707373977, -0.765473485},
	{0.940449476, 0.0902620107}, {-0.823863506, 0.0892476887},
	{-0.320706666, 0.501434207}, {0.575931609, -0.989664257},
	{-0.36326018, 0.0744024292}, {0.99979043, -0.141302869},
	{-0.923660219, -0.979792953}, {-0.446071774, -0.54233253},
	{0.442268014, 0.713267565}, {0.0367190726, 0.636063874},
	{0.521754265, -0.853968263}, {-0.947011411, -0.0182634816},
	{-0.987596095, 0.822887123}, {0.874347925, 0.893994927},
	{-0.934120417, 0.413740516}, {0.960639417, 0.931167066},
	{0.975342512, 0.861509323}, {0.996424675, 0.701900423},
	{-0.947050869, -0.295800418}, {0.915998042, -0.981478333},
}
