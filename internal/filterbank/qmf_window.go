package filterbank

// qmfWindow holds the 640 prototype filter coefficients c[i] of the SBR QMF
// banks. The analysis bank uses even taps only.
// Source: ISO/IEC 14496-3, 4.6.18.8 (QMF prototype window)
var qmfWindow = [640]float32{
	0, -0.000552528654, -0.000561769237, -0.000494751788, -0.000487522804,
	-0.000489379105, -0.000504071417, -0.000522656424, -0.000546656549, -0.000567780284,
	-0.000587093062, -0.000613274751, -0.000631249335, -0.000654033327, -0.000677769072,
	-0.000694161456, -0.000715773669, -0.000725504302, -0.000744094199, -0.000749059778,
	-0.000768137164, -0.000772484869, -0.000783433206, -0.000777986948, -0.000780366478,
	-0.000780144939, -0.000775797758, -0.000763079384, -0.000753000146, -0.000731935725,
	-0.000721539196, -0.000691793743, -0.000665041502, -0.000634159485, -0.00059461192,
	-0.000556457613, -0.000514557236, -0.000460632553, -0.00040951214, -0.000350117596,
	-0.000289698131, -0.000209833728, -0.000144638092, -6.17334372e-05, 1.34949742e-05,
	0.000109438311, 0.000204301701, 0.000294953119, 0.000402654026, 0.000510738872,
	0.000623937638, 0.000745802594, 0.000860844331, 0.000988598797, 0.00112501555,
	0.00125778851, 0.00139024947, 0.001544322, 0.0016868083, 0.00183482654,
	0.00198411406, 0.00214615837, 0.00230172556, 0.00246256171, 0.00262017595,
	0.00278704637, 0.00294694467, 0.00311254198, 0.00327396137, 0.00344188744,
	0.00360082672, 0.00376039231, 0.00392074324, 0.0040819752, 0.00422642706,
	0.00437307218, 0.0045209853, 0.00466064597, 0.00479325606, 0.00491376035,
	0.00503930217, 0.0051407353, 0.00524611678, 0.00534716807, 0.00541967759,
	0.00548760407, 0.00554757146, 0.00559380231, 0.00562206423, 0.00564551959,
	0.00563891977, 0.00562661141, 0.00559171289, 0.0055404366, 0.00547537813,
	0.00538389757, 0.00527157588, 0.00513822772, 0.00498396857, 0.00481094699,
	0.0046039531, 0.00438018609, 0.00412516436, 0.00384564092, 0.00354012474,
	0.00320918858, 0.00284467568, 0.00245085405, 0.00202741753, 0.00157846825,
	0.00109023286, 0.000583226443, 2.76045193e-05, -0.000546428084, -0.00115681358,
	-0.00180394726, -0.00248267245, -0.00319337775, -0.00394011242, -0.00472225947,
	-0.0055337213, -0.00637922948, -0.00726158172, -0.00817982294, -0.00913253333,
	-0.0101150218, -0.0111315548, -0.0121849999, 0.0132718217, 0.0143904667,
	0.0155405551, 0.0167324711, 0.0179433376, 0.0191872437, 0.0204531793,
	0.0217467546, 0.0230680164, 0.0244160984, 0.0257875845, 0.027185943,
	0.0286072176, 0.0300502665, 0.0315017626, 0.0329754092, 0.0344620943,
	0.0359697565, 0.0374812856, 0.0390053689, 0.0405349173, 0.0420649089,
	0.0436097533, 0.045148842, 0.0466843024, 0.0482165702, 0.0497385748,
	0.0512556173, 0.0527630746, 0.0542452782, 0.055717364, 0.0571616441,
	0.058591567, 0.0599837489, 0.0613455176, 0.0626857802, 0.0639715865,
	0.0652247071, 0.0664367527, 0.0676075965, 0.0687043816, 0.0697630271,
	0.0707628727, 0.0717002675, 0.0725682601, 0.0733620226, 0.0741003677,
	0.0747452527, 0.075313732, 0.0758008361, 0.0761992484, 0.0764992163,
	0.0767093524, 0.0768174008, 0.0768230036, 0.0767204911, 0.0765050724,
	0.0761748329, 0.0757305771, 0.0751576275, 0.0744664371, 0.0736405998,
	0.0726774633, 0.0715826377, 0.0703533068, 0.0689664036, 0.0674525052,
	0.0657690689, 0.0639444813, 0.0619602762, 0.0598166585, 0.057515271,
	0.0550460033, 0.0524093807, 0.0495978668, 0.0466303304, 0.0434768796,
	0.0401458293, 0.0366418101, 0.0329583921, 0.0290824007, 0.0250307564,
	0.0207997076, 0.0163701251, 0.0117623834, 0.00696368609, 0.0019765601,
	-0.00320868962, -0.00857117493, -0.0141288824, -0.0198834129, -0.0258227289,
	-0.0319531262, -0.0382776558, -0.0447806828, -0.0514804162, -0.0583705343,
	-0.0654409826, -0.0726943314, -0.0801372901, -0.0877547562, -0.0955533385,
	-0.103532955, -0.111682691, -0.120007798, -0.128500283, -0.137155175,
	-0.145976648, -0.154960707, -0.164095879, -0.173380822, -0.18281725,
	-0.192396671, -0.202125013, -0.211973593, -0.221965268, -0.23206909,
	-0.242301688, -0.252648026, -0.263105333, -0.273663402, -0.284321427,
	-0.295071661, -0.305909872, -0.316827893, -0.32781136, -0.338872284,
	-0.349991411, 0.361158997, 0.372379541, 0.383635014, 0.394921184,
	0.406231761, 0.417569697, 0.428911984, 0.440255374, 0.451599658,
	0.462930799, 0.47424531, 0.48552531, 0.496770829, 0.507981777,
	0.519123495, 0.530224085, 0.541255355, 0.552205145, 0.56307894,
	0.57385242, 0.584540308, 0.595112324, 0.605578363, 0.615911007,
	0.626124263, 0.636197984, 0.646126986, 0.655901611, 0.665513992,
	0.674966335, 0.684235334, 0.693328261, 0.702238858, 0.710941017,
	0.719446242, 0.727744877, 0.735821187, 0.743682802, 0.751313746,
	0.75870806, 0.765867472, 0.772778094, 0.77942878, 0.785835326,
	0.791973591, 0.797846615, 0.803448558, 0.808769524, 0.81381911,
	0.818577588, 0.823041975, 0.827227533, 0.831103861, 0.83469373,
	0.837971747, 0.840954125, 0.843623817, 0.845981836, 0.84803158,
	0.8497805, 0.851197124, 0.852304697, 0.853102088, 0.853572071,
	0.853738546, 0.853572071, 0.853102088, 0.852304697, 0.851197124,
	0.8497805, 0.84803158, 0.845981836, 0.843623817, 0.840954125,
	0.837971747, 0.83469373, 0.831103861, 0.827227533, 0.823041975,
	0.818577588, 0.81381911, 0.808769524, 0.803448558, 0.797846615,
	0.791973591, 0.785835326, 0.77942878, 0.772778094, 0.765867472,
	0.75870806, 0.751313746, 0.743682802, 0.735821187, 0.727744877,
	0.719446242, 0.710941017, 0.702238858, 0.693328261, 0.684235334,
	0.674966335, 0.665513992, 0.655901611, 0.646126986, 0.636197984,
	0.626124263, 0.615911007, 0.605578363, 0.595112324, 0.584540308,
	0.57385242, 0.56307894, 0.552205145, 0.541255355, 0.530224085,
	0.519123495, 0.507981777, 0.496770829, 0.48552531, 0.47424531,
	0.462930799, 0.451599658, 0.440255374, 0.428911984, 0.417569697,
	0.406231761, 0.394921184, 0.383635014, 0.372379541, -0.361158997,
	-0.349991411, -0.338872284, -0.32781136, -0.316827893, -0.305909872,
	-0.295071661, -0.284321427, -0.273663402, -0.263105333, -0.252648026,
	-0.242301688, -0.23206909, -0.221965268, -0.211973593, -0.202125013,
	-0.192396671, -0.18281725, -0.173380822, -0.164095879, -0.154960707,
	-0.145976648, -0.137155175, -0.128500283, -0.120007798, -0.111682691,
	-0.103532955, -0.0955533385, -0.0877547562, -0.0801372901, -0.0726943314,
	-0.0654409826, -0.0583705343, -0.0514804162, -0.0447806828, -0.0382776558,
	-0.0319531262, -0.0258227289, -0.0198834129, -0.0141288824, -0.00857117493,
	-0.00320868962, 0.0019765601, 0.00696368609, 0.0117623834, 0.0163701251,
	0.0207997076, 0.0250307564, 0.0290824007, 0.0329583921, 0.0366418101,
	0.0401458293, 0.0434768796, 0.0466303304, 0.0495978668, 0.0524093807,
	0.0550460033, 0.057515271, 0.0598166585, 0.0619602762, 0.0639444813,
	0.0657690689, 0.0674525052, 0.0689664036, 0.0703533068, 0.0715826377,
	0.0726774633, 0.0736405998, 0.0744664371, 0.0751576275, 0.0757305771,
	0.0761748329, 0.0765050724, 0.0767204911, 0.0768230036, 0.0768174008,
	0.0767093524, 0.0764992163, 0.0761992484, 0.0758008361, 0.075313732,
	0.0747452527, 0.0741003677, 0.0733620226, 0.0725682601, 0.0717002675,
	0.0707628727, 0.0697630271, 0.0687043816, 0.0676075965, 0.0664367527,
	0.0652247071, 0.0639715865, 0.0626857802, 0.0613455176, 0.0599837489,
	0.058591567, 0.0571616441, 0.055717364, 0.0542452782, 0.0527630746,
	0.0512556173, 0.0497385748, 0.0482165702, 0.0466843024, 0.045148842,
	0.0436097533, 0.0420649089, 0.0405349173, 0.0390053689, 0.0374812856,
	0.0359697565, 0.0344620943, 0.0329754092, 0.0315017626, 0.0300502665,
	0.0286072176, 0.027185943, 0.0257875845, 0.0244160984, 0.0230680164,
	0.0217467546, 0.0204531793, 0.0191872437, 0.0179433376, 0.0167324711,
	0.0155405551, 0.0143904667, -0.0132718217, -0.0121849999, -0.0111315548,
	-0.0101150218, -0.00913253333, -0.00817982294, -0.00726158172, -0.00637922948,
	-0.0055337213, -0.00472225947, -0.00394011242, -0.00319337775, -0.00248267245,
	-0.00180394726, -0.00115681358, -0.000546428084, 2.76045193e-05, 0.000583226443,
	0.00109023286, 0.00157846825, 0.00202741753, 0.00245085405, 0.00284467568,
	0.00320918858, 0.00354012474, 0.00384564092, 0.00412516436, 0.00438018609,
	0.0046039531, 0.00481094699, 0.00498396857, 0.00513822772, 0.00527157588,
	0.00538389757, 0.00547537813, 0.0055404366, 0.00559171289, 0.00562661141,
	0.00563891977, 0.00564551959, 0.00562206423, 0.00559380231, 0.00554757146,
	0.00548760407, 0.00541967759, 0.00534716807, 0.00524611678, 0.0051407353,
	0.00503930217, 0.00491376035, 0.00479325606, 0.00466064597, 0.0045209853,
	0.00437307218, 0.00422642706, 0.0040819752, 0.00392074324, 0.00376039231,
	0.00360082672, 0.00344188744, 0.00327396137, 0.00311254198, 0.00294694467,
	0.00278704637, 0.00262017595, 0.00246256171, 0.00230172556, 0.00214615837,
	0.00198411406, 0.00183482654, 0.0016868083, 0.001544322, 0.00139024947,
	0.00125778851, 0.00112501555, 0.000988598797, 0.000860844331, 0.000745802594,
	0.000623937638, 0.000510738872, 0.000402654026, 0.000294953119, 0.000204301701,
	0.000109438311, 1.34949742e-05, -6.17334372e-05, -0.000144638092, -0.000209833728,
	-0.000289698131, -0.000350117596, -0.00040951214, -0.000460632553, -0.000514557236,
	-0.000556457613, -0.00059461192, -0.000634159485, -0.000665041502, -0.000691793743,
	-0.000721539196, -0.000731935725, -0.000753000146, -0.000763079384, -0.000775797758,
	-0.000780144939, -0.000780366478, -0.000777986948, -0.000783433206, -0.000772484869,
	-0.000768137164, -0.000749059778, -0.000744094199, -0.000725504302, -0.000715773669,
	-0.000694161456, -0.000677769072, -0.000654033327, -0.000631249335, -0.000613274751,
	-0.000587093062, -0.000567780284, -0.000546656549, -0.000522656424, -0.000504071417,
	-0.000489379105, -0.000487522804, -0.000494751788, -0.000561769237, -0.000552528654,
}
