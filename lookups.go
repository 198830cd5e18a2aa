// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fastcsv

// This file holds constant tables used by the Float64 and date formatters.
// All three numeric tables are generated offline at higher-than-double
// precision (Python's decimal module, 60 digits) and embedded verbatim;
// nothing in this package calls math.Pow, math.Log10 or strconv's own
// float formatting to produce them at runtime.

// sigparts holds sigparts[0]=0 and sigparts[i]=2^-i for i in [1,52], each
// rounded to the nearest float64. Summing sigparts[i] for every set bit i
// of an IEEE-754 fraction reconstructs the fractional part of the
// mantissa exactly as the shortest-round-trip algorithm requires.
var sigparts = [53]float64{
	0.0, 0.5, 0.25, 0.125, 0.0625, 0.03125,
	0.015625, 0.0078125, 0.00390625, 0.001953125, 0.0009765625, 0.00048828125,
	0.000244140625, 0.0001220703125, 6.103515625e-05, 3.0517578125e-05, 1.52587890625e-05, 7.62939453125e-06,
	3.814697265625e-06, 1.9073486328125e-06, 9.5367431640625e-07, 4.76837158203125e-07, 2.384185791015625e-07, 1.1920928955078125e-07,
	5.960464477539063e-08, 2.9802322387695312e-08, 1.4901161193847656e-08, 7.450580596923828e-09, 3.725290298461914e-09, 1.862645149230957e-09,
	9.313225746154785e-10, 4.656612873077393e-10, 2.3283064365386963e-10, 1.1641532182693481e-10, 5.820766091346741e-11, 2.9103830456733704e-11,
	1.4551915228366852e-11, 7.275957614183426e-12, 3.637978807091713e-12, 1.8189894035458565e-12, 9.094947017729282e-13, 4.547473508864641e-13,
	2.2737367544323206e-13, 1.1368683772161603e-13, 5.684341886080802e-14, 2.842170943040401e-14, 1.4210854715202004e-14, 7.105427357601002e-15,
	3.552713678800501e-15, 1.7763568394002505e-15, 8.881784197001252e-16, 4.440892098500626e-16, 2.220446049250313e-16,
}

// expsig[e] is the decimal significand of 2^(e-1023), i.e. the "d.ddd"
// part of 2^(e-1023) written in scientific notation, for e in [0,2047].
var expsig = [2048]float64{
	1.1125369292536007, 2.2250738585072014, 4.450147717014403, 8.900295434028806, 1.780059086805761, 3.560118173611522,
	7.120236347223044, 1.424047269444609, 2.848094538889218, 5.696189077778436, 1.139237815555687, 2.278475631111374,
	4.556951262222748, 9.113902524445496, 1.8227805048890993, 3.6455610097781985, 7.291122019556397, 1.4582244039112795,
	2.916448807822559, 5.832897615645118, 1.1665795231290237, 2.3331590462580474, 4.666318092516095, 9.33263618503219,
	1.8665272370064379, 3.7330544740128757, 7.466108948025751, 1.4932217896051503, 2.9864435792103006, 5.972887158420601,
	1.1945774316841202, 2.3891548633682405, 4.778309726736481, 9.556619453472962, 1.9113238906945922, 3.8226477813891844,
	7.645295562778369, 1.5290591125556738, 3.0581182251113477, 6.116236450222695, 1.223247290044539, 2.446494580089078,
	4.892989160178156, 9.785978320356312, 1.9571956640712624, 3.914391328142525, 7.82878265628505, 1.56575653125701,
	3.13151306251402, 6.26302612502804, 1.252605225005608, 2.505210450011216, 5.010420900022432, 1.0020841800044864,
	2.004168360008973, 4.008336720017946, 8.016673440035891, 1.6033346880071782, 3.2066693760143563, 6.413338752028713,
	1.2826677504057427, 2.5653355008114853, 5.130671001622971, 1.0261342003245941, 2.0522684006491883, 4.1045368012983765,
	8.209073602596753, 1.6418147205193505, 3.283629441038701, 6.567258882077402, 1.3134517764154805, 2.626903552830961,
	5.253807105661922, 1.0507614211323844, 2.1015228422647687, 4.203045684529537, 8.406091369059075, 1.6812182738118149,
	3.3624365476236298, 6.7248730952472595, 1.344974619049452, 2.689949238098904, 5.379898476197808, 1.0759796952395615,
	2.151959390479123, 4.303918780958246, 8.607837561916492, 1.7215675123832985, 3.443135024766597, 6.886270049533194,
	1.3772540099066388, 2.7545080198132776, 5.509016039626555, 1.101803207925311, 2.203606415850622, 4.407212831701244,
	8.814425663402488, 1.7628851326804977, 3.5257702653609955, 7.051540530721991, 1.410308106144398, 2.820616212288796,
	5.641232424577592, 1.1282464849155185, 2.256492969831037, 4.512985939662074, 9.025971879324148, 1.8051943758648297,
	3.6103887517296593, 7.220777503459319, 1.4441555006918636, 2.888311001383727, 5.776622002767454, 1.1553244005534908,
	2.3106488011069817, 4.621297602213963, 9.242595204427927, 1.8485190408855854, 3.6970380817711708, 7.3940761635423415,
	1.4788152327084685, 2.957630465416937, 5.915260930833874, 1.1830521861667747, 2.3661043723335493, 4.732208744667099,
	9.464417489334197, 1.8928834978668396, 3.7857669957336793, 7.5715339914673585, 1.5143067982934717, 3.0286135965869434,
	6.057227193173887, 1.2114454386347773, 2.4228908772695545, 4.845781754539109, 9.691563509078218, 1.9383127018156436,
	3.8766254036312873, 7.7532508072625745, 1.550650161452515, 3.10130032290503, 6.20260064581006, 1.240520129162012,
	2.481040258324024, 4.962080516648048, 9.924161033296096, 1.9848322066592192, 3.9696644133184384, 7.939328826636877,
	1.5878657653273753, 3.1757315306547507, 6.351463061309501, 1.2702926122619003, 2.5405852245238005, 5.081170449047601,
	1.0162340898095201, 2.0324681796190402, 4.0649363592380805, 8.129872718476161, 1.6259745436952324, 3.251949087390465,
	6.50389817478093, 1.3007796349561858, 2.6015592699123715, 5.203118539824743, 1.0406237079649487, 2.0812474159298975,
	4.162494831859795, 8.32498966371959, 1.664997932743918, 3.329995865487836, 6.659991730975672, 1.3319983461951344,
	2.6639966923902687, 5.327993384780537, 1.0655986769561074, 2.131197353912215, 4.26239470782443, 8.52478941564886,
	1.7049578831297718, 3.4099157662595436, 6.819831532519087, 1.3639663065038174, 2.727932613007635, 5.45586522601527,
	1.0911730452030541, 2.1823460904061083, 4.3646921808122165, 8.729384361624433, 1.7458768723248865, 3.491753744649773,
	6.983507489299546, 1.396701497859909, 2.793402995719818, 5.586805991439636, 1.1173611982879272, 2.2347223965758545,
	4.469444793151709, 8.938889586303418, 1.7877779172606838, 3.5755558345213676, 7.151111669042735, 1.430222333808547,
	2.860444667617094, 5.720889335234188, 1.1441778670468377, 2.2883557340936753, 4.576711468187351, 9.153422936374701,
	1.8306845872749402, 3.6613691745498804, 7.322738349099761, 1.4645476698199522, 2.9290953396399044, 5.858190679279809,
	1.1716381358559618, 2.3432762717119235, 4.686552543423847, 9.373105086847694, 1.8746210173695388, 3.7492420347390776,
	7.498484069478155, 1.499696813895631, 2.999393627791262, 5.998787255582524, 1.1997574511165048, 2.3995149022330096,
	4.799029804466019, 9.598059608932038, 1.9196119217864076, 3.839223843572815, 7.67844768714563, 1.5356895374291262,
	3.0713790748582523, 6.142758149716505, 1.2285516299433008, 2.4571032598866016, 4.914206519773203, 9.828413039546406,
	1.9656826079092815, 3.931365215818563, 7.862730431637126, 1.5725460863274252, 3.1450921726548504, 6.290184345309701,
	1.2580368690619401, 2.5160737381238802, 5.0321474762477605, 1.006429495249552, 2.012858990499104, 4.025717980998208,
	8.051435961996416, 1.6102871923992834, 3.220574384798567, 6.441148769597134, 1.2882297539194267, 2.5764595078388535,
	5.152919015677707, 1.0305838031355414, 2.061167606271083, 4.122335212542166, 8.244670425084331, 1.6489340850168661,
	3.2978681700337322, 6.5957363400674645, 1.3191472680134928, 2.6382945360269856, 5.276589072053971, 1.0553178144107944,
	2.110635628821589, 4.221271257643178, 8.442542515286355, 1.6885085030572708, 3.3770170061145417, 6.754034012229083,
	1.3508068024458166, 2.7016136048916333, 5.4032272097832665, 1.0806454419566534, 2.1612908839133067, 4.322581767826613,
	8.645163535653227, 1.7290327071306455, 3.458065414261291, 6.916130828522582, 1.3832261657045164, 2.766452331409033,
	5.532904662818066, 1.1065809325636131, 2.2131618651272262, 4.4263237302544525, 8.852647460508905, 1.770529492101781,
	3.541058984203562, 7.082117968407124, 1.4164235936814247, 2.8328471873628494, 5.665694374725699, 1.1331388749451399,
	2.2662777498902797, 4.5325554997805595, 9.065110999561119, 1.8130221999122236, 3.626044399824447, 7.252088799648894,
	1.450417759929779, 2.900835519859558, 5.801671039719116, 1.160334207943823, 2.320668415887646, 4.641336831775292,
	9.282673663550584, 1.856534732710117, 3.713069465420234, 7.426138930840468, 1.4852277861680936, 2.970455572336187,
	5.940911144672374, 1.1881822289344748, 2.3763644578689496, 4.752728915737899, 9.505457831475798, 1.9010915662951597,
	3.8021831325903195, 7.604366265180639, 1.5208732530361277, 3.0417465060722555, 6.083493012144511, 1.2166986024289024,
	2.4333972048578048, 4.8667944097156095, 9.733588819431219, 1.9467177638862436, 3.8934355277724872, 7.7868710555449745,
	1.557374211108995, 3.11474842221799, 6.22949684443598, 1.245899368887196, 2.491798737774392, 4.983597475548784,
	9.967194951097568, 1.9934389902195135, 3.986877980439027, 7.973755960878054, 1.5947511921756108, 3.1895023843512216,
	6.379004768702443, 1.2758009537404886, 2.5516019074809773, 5.1032038149619545, 1.0206407629923908, 2.0412815259847816,
	4.082563051969563, 8.165126103939127, 1.6330252207878255, 3.266050441575651, 6.532100883151302, 1.3064201766302603,
	2.6128403532605207, 5.225680706521041, 1.0451361413042084, 2.090272282608417, 4.180544565216834, 8.361089130433667,
	1.6722178260867333, 3.3444356521734666, 6.688871304346933, 1.3377742608693866, 2.675548521738773, 5.351097043477546,
	1.0702194086955092, 2.1404388173910185, 4.280877634782037, 8.561755269564074, 1.7123510539128148, 3.4247021078256297,
	6.849404215651259, 1.3698808431302518, 2.7397616862605036, 5.479523372521007, 1.0959046745042016, 2.191809349008403,
	4.383618698016806, 8.767237396033613, 1.7534474792067225, 3.506894958413445, 7.01378991682689, 1.402757983365378,
	2.805515966730756, 5.611031933461512, 1.1222063866923024, 2.244412773384605, 4.48882554676921, 8.97765109353842,
	1.7955302187076838, 3.5910604374153676, 7.182120874830735, 1.436424174966147, 2.872848349932294, 5.745696699864588,
	1.1491393399729175, 2.298278679945835, 4.59655735989167, 9.19311471978334, 1.8386229439566681, 3.6772458879133363,
	7.354491775826673, 1.4708983551653345, 2.941796710330669, 5.883593420661338, 1.1767186841322677, 2.3534373682645353,
	4.706874736529071, 9.413749473058141, 1.8827498946116281, 3.7654997892232562, 7.5309995784465125, 1.5061999156893027,
	3.0123998313786053, 6.024799662757211, 1.204959932551442, 2.409919865102884, 4.819839730205768, 9.639679460411536,
	1.9279358920823073, 3.8558717841646146, 7.711743568329229, 1.5423487136658458, 3.0846974273316916, 6.169394854663383,
	1.2338789709326767, 2.4677579418653535, 4.935515883730707, 9.871031767461414, 1.9742063534922827, 3.9484127069845654,
	7.896825413969131, 1.5793650827938261, 3.1587301655876523, 6.317460331175305, 1.2634920662350608, 2.5269841324701217,
	5.053968264940243, 1.0107936529880488, 2.0215873059760976, 4.043174611952195, 8.08634922390439, 1.617269844780878,
	3.234539689561756, 6.469079379123512, 1.2938158758247025, 2.587631751649405, 5.17526350329881, 1.0350527006597618,
	2.0701054013195237, 4.140210802639047, 8.280421605278095, 1.656084321055619, 3.312168642111238, 6.624337284222476,
	1.3248674568444951, 2.6497349136889903, 5.299469827377981, 1.0598939654755961, 2.1197879309511922, 4.2395758619023844,
	8.479151723804769, 1.695830344760954, 3.391660689521908, 6.783321379043816, 1.356664275808763, 2.713328551617526,
	5.426657103235052, 1.0853314206470104, 2.1706628412940208, 4.3413256825880415, 8.682651365176083, 1.7365302730352168,
	3.4730605460704336, 6.946121092140867, 1.3892242184281733, 2.7784484368563467, 5.556896873712693, 1.1113793747425387,
	2.2227587494850773, 4.445517498970155, 8.89103499794031, 1.778206999588062, 3.556413999176124, 7.112827998352248,
	1.4225655996704496, 2.845131199340899, 5.690262398681798, 1.1380524797363596, 2.276104959472719, 4.552209918945438,
	9.104419837890877, 1.8208839675781754, 3.6417679351563508, 7.2835358703127016, 1.4567071740625404, 2.9134143481250807,
	5.826828696250161, 1.1653657392500323, 2.3307314785000646, 4.661462957000129, 9.322925914000258, 1.8645851828000517,
	3.7291703656001034, 7.458340731200207, 1.4916681462400414, 2.983336292480083, 5.966672584960166, 1.193334516992033,
	2.386669033984066, 4.773338067968132, 9.546676135936265, 1.909335227187253, 3.818670454374506, 7.637340908749012,
	1.5274681817498024, 3.0549363634996047, 6.1098727269992095, 1.2219745453998418, 2.4439490907996837, 4.887898181599367,
	9.775796363198735, 1.955159272639747, 3.910318545279494, 7.820637090558988, 1.5641274181117977, 3.1282548362235953,
	6.256509672447191, 1.251301934489438, 2.502603868978876, 5.005207737957752, 1.0010415475915504, 2.002083095183101,
	4.004166190366202, 8.008332380732403, 1.6016664761464807, 3.2033329522929614, 6.406665904585923, 1.2813331809171846,
	2.5626663618343692, 5.1253327236687385, 1.0250665447337477, 2.0501330894674954, 4.100266178934991, 8.200532357869982,
	1.6401064715739964, 3.2802129431479927, 6.560425886295985, 1.312085177259197, 2.624170354518394, 5.248340709036788,
	1.0496681418073577, 2.0993362836147154, 4.198672567229431, 8.397345134458861, 1.6794690268917722, 3.3589380537835445,
	6.717876107567089, 1.3435752215134178, 2.6871504430268356, 5.374300886053671, 1.0748601772107342, 2.1497203544214685,
	4.299440708842937, 8.598881417685874, 1.7197762835371748, 3.4395525670743496, 6.879105134148699, 1.3758210268297397,
	2.7516420536594794, 5.503284107318959, 1.1006568214637917, 2.2013136429275835, 4.402627285855167, 8.805254571710334,
	1.761050914342067, 3.522101828684134, 7.044203657368268, 1.4088407314736535, 2.817681462947307, 5.635362925894614,
	1.1270725851789227, 2.2541451703578455, 4.508290340715691, 9.016580681431382, 1.8033161362862766, 3.6066322725725533,
	7.2132645451451065, 1.4426529090290212, 2.8853058180580424, 5.770611636116085, 1.154122327223217, 2.308244654446434,
	4.616489308892868, 9.232978617785736, 1.846595723557147, 3.693191447114294, 7.386382894228588, 1.4772765788457176,
	2.9545531576914352, 5.9091063153828705, 1.181821263076574, 2.363642526153148, 4.727285052306296, 9.454570104612593,
	1.8909140209225186, 3.781828041845037, 7.563656083690074, 1.512731216738015, 3.02546243347603, 6.05092486695206,
	1.210184973390412, 2.420369946780824, 4.840739893561648, 9.681479787123296, 1.9362959574246592, 3.8725919148493184,
	7.745183829698637, 1.5490367659397273, 3.0980735318794546, 6.196147063758909, 1.2392294127517818, 2.4784588255035636,
	4.956917651007127, 9.913835302014254, 1.982767060402851, 3.965534120805702, 7.931068241611404, 1.5862136483222808,
	3.1724272966445617, 6.344854593289123, 1.2689709186578246, 2.5379418373156493, 5.0758836746312985, 1.0151767349262597,
	2.0303534698525194, 4.060706939705039, 8.121413879410078, 1.6242827758820155, 3.248565551764031, 6.497131103528062,
	1.2994262207056124, 2.598852441411225, 5.19770488282245, 1.0395409765644898, 2.0790819531289797, 4.158163906257959,
	8.316327812515919, 1.6632655625031838, 3.3265311250063676, 6.653062250012735, 1.3306124500025471, 2.6612249000050943,
	5.3224498000101885, 1.0644899600020377, 2.1289799200040753, 4.257959840008151, 8.515919680016301, 1.7031839360032603,
	3.4063678720065207, 6.812735744013041, 1.3625471488026082, 2.7250942976052164, 5.450188595210433, 1.0900377190420867,
	2.1800754380841734, 4.360150876168347, 8.720301752336693, 1.7440603504673384, 3.488120700934677, 6.976241401869354,
	1.3952482803738708, 2.7904965607477417, 5.580993121495483, 1.1161986242990967, 2.2323972485981933, 4.464794497196387,
	8.929588994392773, 1.7859177988785546, 3.5718355977571092, 7.1436711955142185, 1.4287342391028437, 2.8574684782056874,
	5.714936956411375, 1.142987391282275, 2.28597478256455, 4.5719495651291, 9.1438991302582, 1.82877982605164,
	3.65755965210328, 7.31511930420656, 1.463023860841312, 2.926047721682624, 5.852095443365248, 1.1704190886730497,
	2.3408381773460993, 4.681676354692199, 9.363352709384397, 1.8726705418768794, 3.745341083753759, 7.490682167507518,
	1.4981364335015035, 2.996272867003007, 5.992545734006014, 1.1985091468012028, 2.3970182936024056, 4.794036587204811,
	9.588073174409622, 1.9176146348819245, 3.835229269763849, 7.670458539527698, 1.5340917079055396, 3.0681834158110792,
	6.1363668316221585, 1.2272733663244317, 2.4545467326488635, 4.909093465297727, 9.818186930595454, 1.9636373861190906,
	3.927274772238181, 7.854549544476362, 1.5709099088952725, 3.141819817790545, 6.28363963558109, 1.256727927116218,
	2.513455854232436, 5.026911708464872, 1.0053823416929744, 2.0107646833859487, 4.021529366771897, 8.043058733543795,
	1.608611746708759, 3.217223493417518, 6.434446986835036, 1.2868893973670072, 2.5737787947340145, 5.147557589468029,
	1.0295115178936058, 2.0590230357872117, 4.118046071574423, 8.236092143148847, 1.6472184286297693, 3.2944368572595386,
	6.588873714519077, 1.3177747429038154, 2.6355494858076307, 5.271098971615261, 1.0542197943230522, 2.1084395886461045,
	4.216879177292209, 8.433758354584418, 1.6867516709168837, 3.3735033418337674, 6.747006683667535, 1.349401336733507,
	2.698802673467014, 5.397605346934028, 1.0795210693868056, 2.159042138773611, 4.318084277547222, 8.636168555094445,
	1.727233711018889, 3.454467422037778, 6.908934844075556, 1.3817869688151112, 2.7635739376302224, 5.527147875260445,
	1.1054295750520888, 2.2108591501041777, 4.421718300208355, 8.84343660041671, 1.7686873200833422, 3.5373746401666843,
	7.074749280333369, 1.4149498560666738, 2.8298997121333476, 5.659799424266695, 1.131959884853339, 2.263919769706678,
	4.527839539413356, 9.055679078826712, 1.8111358157653425, 3.622271631530685, 7.24454326306137, 1.448908652612274,
	2.897817305224548, 5.795634610449096, 1.1591269220898193, 2.3182538441796385, 4.636507688359277, 9.273015376718554,
	1.8546030753437106, 3.709206150687421, 7.418412301374842, 1.4836824602749685, 2.967364920549937, 5.934729841099874,
	1.1869459682199748, 2.3738919364399496, 4.747783872879899, 9.495567745759798, 1.8991135491519597, 3.7982270983039195,
	7.596454196607839, 1.5192908393215678, 3.0385816786431357, 6.077163357286271, 1.2154326714572543, 2.4308653429145086,
	4.861730685829017, 9.723461371658034, 1.9446922743316069, 3.8893845486632137, 7.778769097326427, 1.5557538194652853,
	3.1115076389305707, 6.223015277861141, 1.2446030555722283, 2.4892061111444566, 4.978412222288913, 9.956824444577826,
	1.9913648889155653, 3.9827297778311306, 7.965459555662261, 1.5930919111324522, 3.1861838222649044, 6.372367644529809,
	1.2744735289059619, 2.5489470578119238, 5.0978941156238475, 1.0195788231247696, 2.039157646249539, 4.078315292499078,
	8.156630584998156, 1.6313261169996311, 3.2626522339992623, 6.525304467998525, 1.305060893599705, 2.61012178719941,
	5.22024357439882, 1.044048714879764, 2.088097429759528, 4.176194859519056, 8.352389719038111, 1.6704779438076223,
	3.3409558876152445, 6.681911775230489, 1.3363823550460978, 2.6727647100921956, 5.345529420184391, 1.0691058840368783,
	2.1382117680737567, 4.276423536147513, 8.552847072295027, 1.7105694144590051, 3.4211388289180102, 6.8422776578360205,
	1.3684555315672042, 2.7369110631344085, 5.473822126268817, 1.0947644252537634, 2.1895288505075268, 4.3790577010150535,
	8.758115402030107, 1.7516230804060213, 3.5032461608120427, 7.006492321624085, 1.401298464324817, 2.802596928649634,
	5.605193857299268, 1.1210387714598538, 2.2420775429197075, 4.484155085839415, 8.96831017167883, 1.7936620343357659,
	3.5873240686715318, 7.1746481373430635, 1.4349296274686127, 2.8698592549372255, 5.739718509874451, 1.1479437019748902,
	2.2958874039497803, 4.591774807899561, 9.183549615799121, 1.8367099231598243, 3.6734198463196486, 7.346839692639297,
	1.4693679385278593, 2.9387358770557186, 5.877471754111437, 1.1754943508222875, 2.350988701644575, 4.70197740328915,
	9.4039548065783, 1.88079096131566, 3.76158192263132, 7.52316384526264, 1.504632769052528, 3.009265538105056,
	6.018531076210112, 1.2037062152420224, 2.4074124304840447, 4.8148248609680895, 9.629649721936179, 1.9259299443872357,
	3.8518598887744715, 7.703719777548943, 1.5407439555097886, 3.081487911019577, 6.162975822039154, 1.232595164407831,
	2.465190328815662, 4.930380657631324, 9.860761315262648, 1.9721522630525294, 3.944304526105059, 7.888609052210118,
	1.5777218104420236, 3.1554436208840473, 6.310887241768095, 1.2621774483536188, 2.5243548967072376, 5.048709793414475,
	1.009741958682895, 2.01948391736579, 4.03896783473158, 8.07793566946316, 1.6155871338926322, 3.2311742677852644,
	6.462348535570529, 1.2924697071141058, 2.5849394142282116, 5.169878828456423, 1.0339757656912847, 2.0679515313825694,
	4.135903062765139, 8.271806125530277, 1.6543612251060553, 3.3087224502121106, 6.617444900424221, 1.3234889800848442,
	2.6469779601696883, 5.293955920339377, 1.0587911840678754, 2.117582368135751, 4.235164736271502, 8.470329472543003,
	1.6940658945086007, 3.3881317890172014, 6.776263578034403, 1.3552527156068805, 2.710505431213761, 5.421010862427522,
	1.0842021724855044, 2.168404344971009, 4.336808689942018, 8.673617379884035, 1.734723475976807, 3.469446951953614,
	6.938893903907228, 1.3877787807814457, 2.7755575615628914, 5.551115123125783, 1.1102230246251565, 2.220446049250313,
	4.440892098500626, 8.881784197001252, 1.7763568394002505, 3.552713678800501, 7.105427357601002, 1.4210854715202004,
	2.8421709430404007, 5.6843418860808015, 1.1368683772161603, 2.2737367544323206, 4.547473508864641, 9.094947017729282,
	1.8189894035458565, 3.637978807091713, 7.275957614183426, 1.4551915228366852, 2.9103830456733704, 5.820766091346741,
	1.1641532182693481, 2.3283064365386963, 4.656612873077393, 9.313225746154785, 1.862645149230957, 3.725290298461914,
	7.450580596923828, 1.4901161193847656, 2.9802322387695312, 5.9604644775390625, 1.1920928955078125, 2.384185791015625,
	4.76837158203125, 9.5367431640625, 1.9073486328125, 3.814697265625, 7.62939453125, 1.52587890625,
	3.0517578125, 6.103515625, 1.220703125, 2.44140625, 4.8828125, 9.765625,
	1.953125, 3.90625, 7.8125, 1.5625, 3.125, 6.25,
	1.25, 2.5, 5.0, 1.0, 2.0, 4.0,
	8.0, 1.6, 3.2, 6.4, 1.28, 2.56,
	5.12, 1.024, 2.048, 4.096, 8.192, 1.6384,
	3.2768, 6.5536, 1.31072, 2.62144, 5.24288, 1.048576,
	2.097152, 4.194304, 8.388608, 1.6777216, 3.3554432, 6.7108864,
	1.34217728, 2.68435456, 5.36870912, 1.073741824, 2.147483648, 4.294967296,
	8.589934592, 1.7179869184, 3.4359738368, 6.8719476736, 1.37438953472, 2.74877906944,
	5.49755813888, 1.099511627776, 2.199023255552, 4.398046511104, 8.796093022208, 1.7592186044416,
	3.5184372088832, 7.0368744177664, 1.40737488355328, 2.81474976710656, 5.62949953421312, 1.125899906842624,
	2.251799813685248, 4.503599627370496, 9.007199254740993, 1.8014398509481984, 3.6028797018963967, 7.2057594037927934,
	1.4411518807585588, 2.8823037615171176, 5.764607523034235, 1.152921504606847, 2.305843009213694, 4.611686018427388,
	9.223372036854776, 1.8446744073709551, 3.6893488147419102, 7.3786976294838205, 1.475739525896764, 2.951479051793528,
	5.902958103587056, 1.1805916207174112, 2.3611832414348224, 4.722366482869645, 9.44473296573929, 1.8889465931478582,
	3.7778931862957164, 7.555786372591433, 1.5111572745182864, 3.022314549036573, 6.044629098073146, 1.208925819614629,
	2.417851639229258, 4.835703278458516, 9.671406556917033, 1.9342813113834068, 3.8685626227668135, 7.737125245533627,
	1.5474250491067254, 3.094850098213451, 6.189700196426902, 1.2379400392853803, 2.4758800785707606, 4.951760157141521,
	9.903520314283043, 1.9807040628566084, 3.9614081257132168, 7.9228162514264335, 1.5845632502852867, 3.1691265005705733,
	6.338253001141147, 1.2676506002282295, 2.535301200456459, 5.070602400912918, 1.0141204801825836, 2.028240960365167,
	4.056481920730334, 8.112963841460669, 1.6225927682921337, 3.2451855365842674, 6.490371073168535, 1.298074214633707,
	2.596148429267414, 5.192296858534828, 1.0384593717069655, 2.076918743413931, 4.153837486827862, 8.307674973655724,
	1.6615349947311449, 3.3230699894622897, 6.646139978924579, 1.3292279957849158, 2.6584559915698316, 5.316911983139663,
	1.0633823966279328, 2.1267647932558655, 4.253529586511731, 8.507059173023462, 1.7014118346046923, 3.4028236692093845,
	6.805647338418769, 1.3611294676837538, 2.7222589353675075, 5.444517870735015, 1.088903574147003, 2.177807148294006,
	4.355614296588012, 8.711228593176024, 1.742245718635205, 3.48449143727041, 6.96898287454082, 1.393796574908164,
	2.787593149816328, 5.575186299632656, 1.1150372599265312, 2.2300745198530625, 4.460149039706125, 8.92029807941225,
	1.7840596158824498, 3.5681192317648995, 7.136238463529799, 1.4272476927059599, 2.8544953854119197, 5.708990770823839,
	1.141798154164768, 2.283596308329536, 4.567192616659072, 9.134385233318143, 1.8268770466636286, 3.653754093327257,
	7.307508186654514, 1.4615016373309029, 2.9230032746618058, 5.8460065493236115, 1.1692013098647223, 2.3384026197294445,
	4.676805239458889, 9.353610478917778, 1.8707220957835557, 3.7414441915671115, 7.482888383134223, 1.4965776766268446,
	2.993155353253689, 5.986310706507378, 1.1972621413014757, 2.3945242826029514, 4.789048565205903, 9.578097130411805,
	1.9156194260823611, 3.8312388521647223, 7.6624777043294445, 1.532495540865889, 3.064991081731778, 6.129982163463556,
	1.225996432692711, 2.451992865385422, 4.903985730770844, 9.807971461541689, 1.9615942923083378, 3.9231885846166756,
	7.846377169233351, 1.5692754338466701, 3.1385508676933402, 6.2771017353866805, 1.2554203470773362, 2.5108406941546724,
	5.021681388309345, 1.004336277661869, 2.008672555323738, 4.017345110647476, 8.034690221294952, 1.6069380442589902,
	3.2138760885179805, 6.427752177035961, 1.2855504354071923, 2.5711008708143845, 5.142201741628769, 1.0284403483257538,
	2.0568806966515076, 4.113761393303015, 8.22752278660603, 1.6455045573212062, 3.2910091146424123, 6.582018229284825,
	1.3164036458569648, 2.6328072917139296, 5.265614583427859, 1.0531229166855718, 2.1062458333711436, 4.212491666742287,
	8.424983333484574, 1.684996666696915, 3.36999333339383, 6.73998666678766, 1.347997333357532, 2.695994666715064,
	5.391989333430128, 1.0783978666860257, 2.1567957333720513, 4.313591466744103, 8.627182933488205, 1.7254365866976409,
	3.4508731733952818, 6.9017463467905635, 1.3803492693581128, 2.7606985387162255, 5.521397077432451, 1.1042794154864901,
	2.2085588309729802, 4.4171176619459604, 8.834235323891921, 1.7668470647783843, 3.5336941295567685, 7.067388259113537,
	1.4134776518227075, 2.826955303645415, 5.65391060729083, 1.130782121458166, 2.261564242916332, 4.523128485832664,
	9.046256971665327, 1.8092513943330655, 3.618502788666131, 7.237005577332262, 1.4474011154664523, 2.8948022309329047,
	5.789604461865809, 1.1579208923731619, 2.3158417847463237, 4.6316835694926475, 9.263367138985295, 1.8526734277970591,
	3.7053468555941182, 7.4106937111882365, 1.4821387422376473, 2.9642774844752946, 5.928554968950589, 1.1857109937901178,
	2.3714219875802356, 4.742843975160471, 9.485687950320942, 1.8971375900641885, 3.794275180128377, 7.588550360256754,
	1.5177100720513508, 3.0354201441027016, 6.070840288205403, 1.2141680576410807, 2.4283361152821614, 4.856672230564323,
	9.713344461128646, 1.9426688922257291, 3.8853377844514583, 7.7706755689029166, 1.5541351137805832, 3.1082702275611664,
	6.216540455122333, 1.2433080910244667, 2.4866161820489334, 4.973232364097867, 9.946464728195734, 1.9892929456391466,
	3.978585891278293, 7.957171782556586, 1.5914343565113171, 3.1828687130226343, 6.365737426045269, 1.2731474852090539,
	2.5462949704181077, 5.092589940836215, 1.018517988167243, 2.037035976334486, 4.074071952668972, 8.148143905337944,
	1.629628781067589, 3.259257562135178, 6.518515124270356, 1.303703024854071, 2.607406049708142, 5.214812099416284,
	1.0429624198832568, 2.0859248397665135, 4.171849679533027, 8.343699359066054, 1.668739871813211, 3.337479743626422,
	6.674959487252844, 1.3349918974505688, 2.6699837949011376, 5.339967589802275, 1.067993517960455, 2.13598703592091,
	4.27197407184182, 8.54394814368364, 1.7087896287367281, 3.4175792574734563, 6.8351585149469125, 1.3670317029893824,
	2.7340634059787647, 5.4681268119575295, 1.093625362391506, 2.187250724783012, 4.374501449566024, 8.749002899132048,
	1.7498005798264096, 3.499601159652819, 6.999202319305638, 1.3998404638611277, 2.7996809277222554, 5.599361855444511,
	1.119872371088902, 2.239744742177804, 4.479489484355608, 8.958978968711216, 1.7917957937422433, 3.5835915874844866,
	7.167183174968973, 1.4334366349937946, 2.866873269987589, 5.733746539975178, 1.1467493079950357, 2.2934986159900714,
	4.586997231980143, 9.173994463960286, 1.834798892792057, 3.669597785584114, 7.339195571168228, 1.4678391142336458,
	2.9356782284672915, 5.871356456934583, 1.1742712913869167, 2.3485425827738333, 4.697085165547667, 9.394170331095333,
	1.8788340662190666, 3.757668132438133, 7.515336264876266, 1.5030672529752533, 3.0061345059505067, 6.012269011901013,
	1.2024538023802027, 2.4049076047604054, 4.809815209520811, 9.619630419041622, 1.923926083808324, 3.847852167616648,
	7.695704335233296, 1.5391408670466593, 3.0782817340933186, 6.156563468186637, 1.2313126936373275, 2.462625387274655,
	4.92525077454931, 9.85050154909862, 1.970100309819724, 3.940200619639448, 7.880401239278896, 1.5760802478557792,
	3.1521604957115583, 6.304320991423117, 1.2608641982846234, 2.5217283965692467, 5.0434567931384935, 1.0086913586276987,
	2.0173827172553973, 4.034765434510795, 8.06953086902159, 1.613906173804318, 3.227812347608636, 6.455624695217272,
	1.2911249390434543, 2.5822498780869085, 5.164499756173817, 1.0328999512347634, 2.065799902469527, 4.131599804939054,
	8.263199609878107, 1.6526399219756216, 3.305279843951243, 6.610559687902486, 1.3221119375804973, 2.6442238751609946,
	5.288447750321989, 1.0576895500643977, 2.1153791001287954, 4.230758200257591, 8.461516400515182, 1.6923032801030364,
	3.384606560206073, 6.769213120412146, 1.353842624082429, 2.707685248164858, 5.415370496329716, 1.0830740992659433,
	2.1661481985318867, 4.332296397063773, 8.664592794127547, 1.7329185588255094, 3.4658371176510188, 6.9316742353020375,
	1.3863348470604073, 2.7726696941208147, 5.545339388241629, 1.109067877648326, 2.218135755296652, 4.436271510593304,
	8.872543021186608, 1.7745086042373215, 3.549017208474643, 7.098034416949286, 1.4196068833898572, 2.8392137667797144,
	5.678427533559429, 1.1356855067118858, 2.2713710134237717, 4.542742026847543, 9.085484053695087, 1.8170968107390173,
	3.6341936214780346, 7.268387242956069, 1.4536774485912138, 2.9073548971824277, 5.814709794364855, 1.162941958872971,
	2.325883917745942, 4.651767835491884, 9.303535670983768, 1.8607071341967536, 3.721414268393507, 7.442828536787014,
	1.488565707357403, 2.977131414714806, 5.954262829429612, 1.1908525658859224, 2.3817051317718447, 4.7634102635436895,
	9.526820527087379, 1.9053641054174757, 3.8107282108349514, 7.621456421669903, 1.5242912843339806, 3.0485825686679613,
	6.097165137335923, 1.2194330274671845, 2.438866054934369, 4.877732109868738, 9.755464219737476, 1.951092843947495,
	3.90218568789499, 7.80437137578998, 1.560874275157996, 3.121748550315992, 6.243497100631984, 1.2486994201263968,
	2.4973988402527936, 4.994797680505587, 9.989595361011174, 1.997919072202235, 3.99583814440447, 7.99167628880894,
	1.598335257761788, 3.196670515523576, 6.393341031047152, 1.2786682062094303, 2.5573364124188607, 5.114672824837721,
	1.0229345649675443, 2.0458691299350886, 4.091738259870177, 8.183476519740355, 1.636695303948071, 3.273390607896142,
	6.546781215792284, 1.3093562431584567, 2.6187124863169133, 5.237424972633827, 1.0474849945267655, 2.094969989053531,
	4.189939978107062, 8.379879956214124, 1.6759759912428247, 3.3519519824856494, 6.703903964971299, 1.3407807929942597,
	2.6815615859885193, 5.363123171977039, 1.0726246343954078, 2.1452492687908156, 4.290498537581631, 8.580997075163262,
	1.7161994150326525, 3.432398830065305, 6.86479766013061, 1.3729595320261219, 2.7459190640522437, 5.4918381281044875,
	1.0983676256208976, 2.1967352512417953, 4.3934705024835905, 8.786941004967181, 1.757388200993436, 3.514776401986872,
	7.029552803973744, 1.4059105607947489, 2.8118211215894977, 5.623642243178995, 1.1247284486357991, 2.2494568972715983,
	4.4989137945431965, 8.997827589086393, 1.7995655178172785, 3.599131035634557, 7.198262071269114, 1.4396524142538227,
	2.8793048285076455, 5.758609657015291, 1.1517219314030582, 2.3034438628061165, 4.606887725612233, 9.213775451224466,
	1.8427550902448933, 3.6855101804897865, 7.371020360979573, 1.4742040721959146, 2.9484081443918293, 5.896816288783659,
	1.1793632577567317, 2.3587265155134634, 4.717453031026927, 9.434906062053853, 1.8869812124107708, 3.7739624248215415,
	7.547924849643083, 1.5095849699286166, 3.019169939857233, 6.038339879714466, 1.2076679759428932, 2.4153359518857864,
	4.830671903771573, 9.661343807543146, 1.9322687615086291, 3.8645375230172583, 7.729075046034517, 1.5458150092069034,
	3.091630018413807, 6.183260036827614, 1.2366520073655227, 2.4733040147310454, 4.946608029462091, 9.893216058924182,
	1.9786432117848363, 3.9572864235696725, 7.914572847139345, 1.582914569427869, 3.165829138855738, 6.331658277711476,
	1.2663316555422952, 2.5326633110845904, 5.065326622169181, 1.0130653244338361, 2.0261306488676722, 4.0522612977353445,
	8.104522595470689, 1.6209045190941378, 3.2418090381882756, 6.483618076376551, 1.2967236152753103, 2.5934472305506207,
	5.186894461101241, 1.0373788922202483, 2.0747577844404965, 4.149515568880993, 8.299031137761986, 1.6598062275523973,
	3.3196124551047945, 6.639224910209589, 1.3278449820419178, 2.6556899640838356, 5.311379928167671, 1.0622759856335342,
	2.1245519712670684, 4.249103942534137, 8.498207885068274, 1.6996415770136548, 3.3992831540273096, 6.798566308054619,
	1.3597132616109238, 2.7194265232218475, 5.438853046443695, 1.087770609288739, 2.175541218577478, 4.351082437154956,
	8.702164874309911, 1.7404329748619825, 3.480865949723965, 6.96173189944793, 1.3923463798895859, 2.7846927597791717,
	5.5693855195583435, 1.1138771039116688, 2.2277542078233377, 4.455508415646675, 8.91101683129335, 1.78220336625867,
	3.56440673251734, 7.12881346503468, 1.425762693006936, 2.851525386013872, 5.703050772027744, 1.140610154405549,
	2.281220308811098, 4.562440617622196, 9.124881235244391, 1.8249762470488782, 3.6499524940977564, 7.299904988195513,
	1.4599809976391025, 2.919961995278205, 5.83992399055641, 1.167984798111282, 2.335969596222564, 4.671939192445128,
	9.343878384890257, 1.8687756769780512, 3.7375513539561025, 7.475102707912205, 1.495020541582441, 2.990041083164882,
	5.980082166329764, 1.1960164332659526, 2.3920328665319053, 4.7840657330638106, 9.568131466127621, 1.9136262932255244,
	3.8272525864510487, 7.654505172902097, 1.5309010345804195, 3.061802069160839, 6.123604138321678, 1.2247208276643355,
	2.449441655328671, 4.898883310657342, 9.797766621314684, 1.959553324262937, 3.919106648525874, 7.838213297051748,
	1.5676426594103496, 3.1352853188206993, 6.2705706376413985, 1.2541141275282797, 2.5082282550565593, 5.016456510113119,
	1.0032913020226237, 2.0065826040452475, 4.013165208090495, 8.02633041618099, 1.605266083236198, 3.210532166472396,
	6.421064332944792, 1.2842128665889583, 2.5684257331779166, 5.136851466355833, 1.0273702932711668, 2.0547405865423336,
	4.109481173084667, 8.218962346169334, 1.6437924692338668, 3.2875849384677336, 6.575169876935467, 1.3150339753870934,
	2.630067950774187, 5.260135901548374, 1.0520271803096748, 2.1040543606193496, 4.208108721238699, 8.416217442477398,
	1.6832434884954794, 3.366486976990959, 6.732973953981918, 1.3465947907963836, 2.693189581592767, 5.386379163185534,
	1.0772758326371068, 2.1545516652742136, 4.309103330548427, 8.618206661096854, 1.723641332219371, 3.447282664438742,
	6.894565328877484, 1.3789130657754969, 2.7578261315509938, 5.5156522631019875, 1.1031304526203976, 2.206260905240795,
	4.41252181048159, 8.82504362096318, 1.765008724192636, 3.530017448385272, 7.060034896770544, 1.4120069793541088,
	2.8240139587082176, 5.648027917416435, 1.129605583483287, 2.259211166966574, 4.518422333933148, 9.036844667866296,
	1.8073689335732592, 3.6147378671465185, 7.229475734293037, 1.4458951468586074, 2.891790293717215, 5.78358058743443,
	1.1567161174868859, 2.3134322349737717, 4.626864469947543, 9.253728939895087, 1.8507457879790175, 3.701491575958035,
	7.40298315191607, 1.4805966303832139, 2.9611932607664277, 5.9223865215328555, 1.184477304306571, 2.368954608613142,
	4.737909217226284, 9.475818434452568, 1.8951636868905137, 3.7903273737810275, 7.580654747562055, 1.5161309495124111,
	3.0322618990248222, 6.0645237980496445, 1.212904759609929, 2.425809519219858, 4.851619038439716, 9.703238076879432,
	1.9406476153758863, 3.8812952307517725, 7.762590461503545, 1.552518092300709, 3.105036184601418, 6.210072369202836,
	1.2420144738405672, 2.4840289476811344, 4.968057895362269, 9.936115790724537, 1.9872231581449074, 3.9744463162898147,
	7.948892632579629, 1.5897785265159259, 3.1795570530318518, 6.3591141060637035, 1.2718228212127407, 2.5436456424254814,
	5.087291284850963, 1.0174582569701927, 2.0349165139403853, 4.069833027880771, 8.139666055761541, 1.6279332111523082,
	3.2558664223046163, 6.511732844609233, 1.3023465689218465, 2.604693137843693, 5.209386275687386, 1.0418772551374773,
	2.0837545102749546, 4.167509020549909, 8.335018041099818, 1.6670036082199635, 3.334007216439927, 6.668014432879854,
	1.3336028865759708, 2.6672057731519416, 5.334411546303883, 1.0668823092607767, 2.1337646185215533, 4.267529237043107,
	8.535058474086213, 1.7070116948172427, 3.4140233896344854, 6.828046779268971, 1.365609355853794, 2.731218711707588,
	5.462437423415176, 1.0924874846830352, 2.1849749693660705, 4.369949938732141, 8.739899877464282, 1.7479799754928564,
	3.495959950985713, 6.991919901971426, 1.3983839803942852, 2.7967679607885705, 5.593535921577141, 1.1187071843154281,
	2.2374143686308563, 4.474828737261713, 8.949657474523425, 1.7899314949046852, 3.5798629898093703, 7.159725979618741,
	1.4319451959237481, 2.8638903918474963, 5.7277807836949926, 1.1455561567389985, 2.291112313477997, 4.582224626955994,
	9.164449253911988, 1.8328898507823974, 3.665779701564795, 7.33155940312959, 1.466311880625918, 2.932623761251836,
	5.865247522503672, 1.1730495045007343, 2.3460990090014686, 4.692198018002937, 9.384396036005874, 1.876879207201175,
	3.75375841440235, 7.5075168288047, 1.50150336576094, 3.00300673152188, 6.00601346304376, 1.201202692608752,
	2.402405385217504, 4.804810770435008, 9.609621540870016, 1.9219243081740032, 3.8438486163480063, 7.687697232696013,
	1.5375394465392027, 3.0750788930784054, 6.150157786156811, 1.230031557231362, 2.460063114462724, 4.920126228925448,
	9.840252457850896, 1.9680504915701793, 3.9361009831403586, 7.872201966280717, 1.5744403932561435, 3.148880786512287,
	6.297761573024574, 1.2595523146049148, 2.5191046292098296, 5.038209258419659, 1.0076418516839318, 2.0152837033678637,
	4.030567406735727, 8.061134813471455, 1.6122269626942909, 3.2244539253885818, 6.4489078507771636, 1.2897815701554327,
	2.5795631403108654, 5.159126280621731, 1.0318252561243462, 2.0636505122486923, 4.127301024497385, 8.25460204899477,
	1.6509204097989538, 3.3018408195979077, 6.603681639195815, 1.320736327839163, 2.641472655678326, 5.282945311356652,
	1.0565890622713305, 2.113178124542661, 4.226356249085322, 8.452712498170644, 1.6905424996341287, 3.3810849992682575,
	6.762169998536515, 1.352433999707303, 2.704867999414606, 5.409735998829212, 1.0819471997658425, 2.163894399531685,
	4.32778879906337, 8.65557759812674, 1.7311155196253478, 3.4622310392506956, 6.924462078501391, 1.3848924157002782,
	2.7697848314005564, 5.539569662801113, 1.1079139325602227, 2.2158278651204455, 4.431655730240891, 8.863311460481782,
	1.7726622920963562, 3.5453245841927123, 7.090649168385425, 1.418129833677085, 2.83625966735417, 5.67251933470834,
	1.134503866941668, 2.269007733883336, 4.538015467766672, 9.076030935533344, 1.8152061871066687, 3.6304123742133374,
	7.260824748426675, 1.452164949685335, 2.90432989937067, 5.80865979874134, 1.161731959748268, 2.323463919496536,
	4.646927838993072, 9.293855677986144, 1.8587711355972287, 3.7175422711944575, 7.435084542388915, 1.4870169084777831,
	2.9740338169555662, 5.9480676339111325, 1.1896135267822265, 2.379227053564453, 4.758454107128906, 9.516908214257812,
	1.9033816428515624, 3.806763285703125, 7.61352657140625, 1.5227053142812499, 3.0454106285624998, 6.0908212571249996,
	1.218164251425, 2.43632850285, 4.8726570057, 9.7453140114, 1.9490628022799998, 3.8981256045599997,
	7.796251209119999, 1.559250241824, 3.118500483648, 6.237000967296, 1.2474001934591998, 2.4948003869183997,
	4.989600773836799, 9.979201547673599, 1.99584030953472, 3.99168061906944, 7.98336123813888, 1.596672247627776,
	3.193344495255552, 6.386688990511104, 1.2773377981022207, 2.5546755962044414, 5.109351192408883, 1.0218702384817766,
	2.043740476963553, 4.087480953927106, 8.174961907854213, 1.6349923815708425, 3.269984763141685, 6.53996952628337,
	1.307993905256674, 2.615987810513348, 5.231975621026696, 1.046395124205339, 2.092790248410678, 4.185580496821356,
	8.371160993642713, 1.6742321987285427, 3.3484643974570854, 6.696928794914171, 1.3393857589828342, 2.6787715179656684,
	5.357543035931337, 1.0715086071862674, 2.143017214372535, 4.28603442874507, 8.57206885749014, 1.7144137714980276,
	3.4288275429960553, 6.857655085992111, 1.371531017198422, 2.743062034396844, 5.486124068793688, 1.0972248137587377,
	2.1944496275174754, 4.388899255034951, 8.777798510069902, 1.7555597020139804, 3.5111194040279607, 7.0222388080559215,
	1.4044477616111843, 2.8088955232223687, 5.617791046444737, 1.1235582092889473, 2.2471164185778947, 4.494232837155789,
	8.988465674311579, 1.797693134862316,
}

// exppow[e] is the decimal exponent of 2^(e-1023): 2^(e-1023) =
// expsig[e] * 10^exppow[e].
var exppow = [2048]int16{
	-308, -308, -308, -308, -307, -307, -307, -306, -306, -306,
	-305, -305, -305, -305, -304, -304, -304, -303, -303, -303,
	-302, -302, -302, -302, -301, -301, -301, -300, -300, -300,
	-299, -299, -299, -299, -298, -298, -298, -297, -297, -297,
	-296, -296, -296, -296, -295, -295, -295, -294, -294, -294,
	-293, -293, -293, -292, -292, -292, -292, -291, -291, -291,
	-290, -290, -290, -289, -289, -289, -289, -288, -288, -288,
	-287, -287, -287, -286, -286, -286, -286, -285, -285, -285,
	-284, -284, -284, -283, -283, -283, -283, -282, -282, -282,
	-281, -281, -281, -280, -280, -280, -280, -279, -279, -279,
	-278, -278, -278, -277, -277, -277, -277, -276, -276, -276,
	-275, -275, -275, -274, -274, -274, -274, -273, -273, -273,
	-272, -272, -272, -271, -271, -271, -271, -270, -270, -270,
	-269, -269, -269, -268, -268, -268, -268, -267, -267, -267,
	-266, -266, -266, -265, -265, -265, -265, -264, -264, -264,
	-263, -263, -263, -262, -262, -262, -261, -261, -261, -261,
	-260, -260, -260, -259, -259, -259, -258, -258, -258, -258,
	-257, -257, -257, -256, -256, -256, -255, -255, -255, -255,
	-254, -254, -254, -253, -253, -253, -252, -252, -252, -252,
	-251, -251, -251, -250, -250, -250, -249, -249, -249, -249,
	-248, -248, -248, -247, -247, -247, -246, -246, -246, -246,
	-245, -245, -245, -244, -244, -244, -243, -243, -243, -243,
	-242, -242, -242, -241, -241, -241, -240, -240, -240, -240,
	-239, -239, -239, -238, -238, -238, -237, -237, -237, -237,
	-236, -236, -236, -235, -235, -235, -234, -234, -234, -233,
	-233, -233, -233, -232, -232, -232, -231, -231, -231, -230,
	-230, -230, -230, -229, -229, -229, -228, -228, -228, -227,
	-227, -227, -227, -226, -226, -226, -225, -225, -225, -224,
	-224, -224, -224, -223, -223, -223, -222, -222, -222, -221,
	-221, -221, -221, -220, -220, -220, -219, -219, -219, -218,
	-218, -218, -218, -217, -217, -217, -216, -216, -216, -215,
	-215, -215, -215, -214, -214, -214, -213, -213, -213, -212,
	-212, -212, -212, -211, -211, -211, -210, -210, -210, -209,
	-209, -209, -209, -208, -208, -208, -207, -207, -207, -206,
	-206, -206, -206, -205, -205, -205, -204, -204, -204, -203,
	-203, -203, -202, -202, -202, -202, -201, -201, -201, -200,
	-200, -200, -199, -199, -199, -199, -198, -198, -198, -197,
	-197, -197, -196, -196, -196, -196, -195, -195, -195, -194,
	-194, -194, -193, -193, -193, -193, -192, -192, -192, -191,
	-191, -191, -190, -190, -190, -190, -189, -189, -189, -188,
	-188, -188, -187, -187, -187, -187, -186, -186, -186, -185,
	-185, -185, -184, -184, -184, -184, -183, -183, -183, -182,
	-182, -182, -181, -181, -181, -181, -180, -180, -180, -179,
	-179, -179, -178, -178, -178, -178, -177, -177, -177, -176,
	-176, -176, -175, -175, -175, -174, -174, -174, -174, -173,
	-173, -173, -172, -172, -172, -171, -171, -171, -171, -170,
	-170, -170, -169, -169, -169, -168, -168, -168, -168, -167,
	-167, -167, -166, -166, -166, -165, -165, -165, -165, -164,
	-164, -164, -163, -163, -163, -162, -162, -162, -162, -161,
	-161, -161, -160, -160, -160, -159, -159, -159, -159, -158,
	-158, -158, -157, -157, -157, -156, -156, -156, -156, -155,
	-155, -155, -154, -154, -154, -153, -153, -153, -153, -152,
	-152, -152, -151, -151, -151, -150, -150, -150, -150, -149,
	-149, -149, -148, -148, -148, -147, -147, -147, -146, -146,
	-146, -146, -145, -145, -145, -144, -144, -144, -143, -143,
	-143, -143, -142, -142, -142, -141, -141, -141, -140, -140,
	-140, -140, -139, -139, -139, -138, -138, -138, -137, -137,
	-137, -137, -136, -136, -136, -135, -135, -135, -134, -134,
	-134, -134, -133, -133, -133, -132, -132, -132, -131, -131,
	-131, -131, -130, -130, -130, -129, -129, -129, -128, -128,
	-128, -128, -127, -127, -127, -126, -126, -126, -125, -125,
	-125, -125, -124, -124, -124, -123, -123, -123, -122, -122,
	-122, -122, -121, -121, -121, -120, -120, -120, -119, -119,
	-119, -119, -118, -118, -118, -117, -117, -117, -116, -116,
	-116, -115, -115, -115, -115, -114, -114, -114, -113, -113,
	-113, -112, -112, -112, -112, -111, -111, -111, -110, -110,
	-110, -109, -109, -109, -109, -108, -108, -108, -107, -107,
	-107, -106, -106, -106, -106, -105, -105, -105, -104, -104,
	-104, -103, -103, -103, -103, -102, -102, -102, -101, -101,
	-101, -100, -100, -100, -100, -99, -99, -99, -98, -98,
	-98, -97, -97, -97, -97, -96, -96, -96, -95, -95,
	-95, -94, -94, -94, -94, -93, -93, -93, -92, -92,
	-92, -91, -91, -91, -91, -90, -90, -90, -89, -89,
	-89, -88, -88, -88, -87, -87, -87, -87, -86, -86,
	-86, -85, -85, -85, -84, -84, -84, -84, -83, -83,
	-83, -82, -82, -82, -81, -81, -81, -81, -80, -80,
	-80, -79, -79, -79, -78, -78, -78, -78, -77, -77,
	-77, -76, -76, -76, -75, -75, -75, -75, -74, -74,
	-74, -73, -73, -73, -72, -72, -72, -72, -71, -71,
	-71, -70, -70, -70, -69, -69, -69, -69, -68, -68,
	-68, -67, -67, -67, -66, -66, -66, -66, -65, -65,
	-65, -64, -64, -64, -63, -63, -63, -63, -62, -62,
	-62, -61, -61, -61, -60, -60, -60, -60, -59, -59,
	-59, -58, -58, -58, -57, -57, -57, -56, -56, -56,
	-56, -55, -55, -55, -54, -54, -54, -53, -53, -53,
	-53, -52, -52, -52, -51, -51, -51, -50, -50, -50,
	-50, -49, -49, -49, -48, -48, -48, -47, -47, -47,
	-47, -46, -46, -46, -45, -45, -45, -44, -44, -44,
	-44, -43, -43, -43, -42, -42, -42, -41, -41, -41,
	-41, -40, -40, -40, -39, -39, -39, -38, -38, -38,
	-38, -37, -37, -37, -36, -36, -36, -35, -35, -35,
	-35, -34, -34, -34, -33, -33, -33, -32, -32, -32,
	-32, -31, -31, -31, -30, -30, -30, -29, -29, -29,
	-28, -28, -28, -28, -27, -27, -27, -26, -26, -26,
	-25, -25, -25, -25, -24, -24, -24, -23, -23, -23,
	-22, -22, -22, -22, -21, -21, -21, -20, -20, -20,
	-19, -19, -19, -19, -18, -18, -18, -17, -17, -17,
	-16, -16, -16, -16, -15, -15, -15, -14, -14, -14,
	-13, -13, -13, -13, -12, -12, -12, -11, -11, -11,
	-10, -10, -10, -10, -9, -9, -9, -8, -8, -8,
	-7, -7, -7, -7, -6, -6, -6, -5, -5, -5,
	-4, -4, -4, -4, -3, -3, -3, -2, -2, -2,
	-1, -1, -1, 0, 0, 0, 0, 1, 1, 1,
	2, 2, 2, 3, 3, 3, 3, 4, 4, 4,
	5, 5, 5, 6, 6, 6, 6, 7, 7, 7,
	8, 8, 8, 9, 9, 9, 9, 10, 10, 10,
	11, 11, 11, 12, 12, 12, 12, 13, 13, 13,
	14, 14, 14, 15, 15, 15, 15, 16, 16, 16,
	17, 17, 17, 18, 18, 18, 18, 19, 19, 19,
	20, 20, 20, 21, 21, 21, 21, 22, 22, 22,
	23, 23, 23, 24, 24, 24, 24, 25, 25, 25,
	26, 26, 26, 27, 27, 27, 27, 28, 28, 28,
	29, 29, 29, 30, 30, 30, 31, 31, 31, 31,
	32, 32, 32, 33, 33, 33, 34, 34, 34, 34,
	35, 35, 35, 36, 36, 36, 37, 37, 37, 37,
	38, 38, 38, 39, 39, 39, 40, 40, 40, 40,
	41, 41, 41, 42, 42, 42, 43, 43, 43, 43,
	44, 44, 44, 45, 45, 45, 46, 46, 46, 46,
	47, 47, 47, 48, 48, 48, 49, 49, 49, 49,
	50, 50, 50, 51, 51, 51, 52, 52, 52, 52,
	53, 53, 53, 54, 54, 54, 55, 55, 55, 55,
	56, 56, 56, 57, 57, 57, 58, 58, 58, 59,
	59, 59, 59, 60, 60, 60, 61, 61, 61, 62,
	62, 62, 62, 63, 63, 63, 64, 64, 64, 65,
	65, 65, 65, 66, 66, 66, 67, 67, 67, 68,
	68, 68, 68, 69, 69, 69, 70, 70, 70, 71,
	71, 71, 71, 72, 72, 72, 73, 73, 73, 74,
	74, 74, 74, 75, 75, 75, 76, 76, 76, 77,
	77, 77, 77, 78, 78, 78, 79, 79, 79, 80,
	80, 80, 80, 81, 81, 81, 82, 82, 82, 83,
	83, 83, 83, 84, 84, 84, 85, 85, 85, 86,
	86, 86, 86, 87, 87, 87, 88, 88, 88, 89,
	89, 89, 90, 90, 90, 90, 91, 91, 91, 92,
	92, 92, 93, 93, 93, 93, 94, 94, 94, 95,
	95, 95, 96, 96, 96, 96, 97, 97, 97, 98,
	98, 98, 99, 99, 99, 99, 100, 100, 100, 101,
	101, 101, 102, 102, 102, 102, 103, 103, 103, 104,
	104, 104, 105, 105, 105, 105, 106, 106, 106, 107,
	107, 107, 108, 108, 108, 108, 109, 109, 109, 110,
	110, 110, 111, 111, 111, 111, 112, 112, 112, 113,
	113, 113, 114, 114, 114, 114, 115, 115, 115, 116,
	116, 116, 117, 117, 117, 118, 118, 118, 118, 119,
	119, 119, 120, 120, 120, 121, 121, 121, 121, 122,
	122, 122, 123, 123, 123, 124, 124, 124, 124, 125,
	125, 125, 126, 126, 126, 127, 127, 127, 127, 128,
	128, 128, 129, 129, 129, 130, 130, 130, 130, 131,
	131, 131, 132, 132, 132, 133, 133, 133, 133, 134,
	134, 134, 135, 135, 135, 136, 136, 136, 136, 137,
	137, 137, 138, 138, 138, 139, 139, 139, 139, 140,
	140, 140, 141, 141, 141, 142, 142, 142, 142, 143,
	143, 143, 144, 144, 144, 145, 145, 145, 145, 146,
	146, 146, 147, 147, 147, 148, 148, 148, 149, 149,
	149, 149, 150, 150, 150, 151, 151, 151, 152, 152,
	152, 152, 153, 153, 153, 154, 154, 154, 155, 155,
	155, 155, 156, 156, 156, 157, 157, 157, 158, 158,
	158, 158, 159, 159, 159, 160, 160, 160, 161, 161,
	161, 161, 162, 162, 162, 163, 163, 163, 164, 164,
	164, 164, 165, 165, 165, 166, 166, 166, 167, 167,
	167, 167, 168, 168, 168, 169, 169, 169, 170, 170,
	170, 170, 171, 171, 171, 172, 172, 172, 173, 173,
	173, 173, 174, 174, 174, 175, 175, 175, 176, 176,
	176, 177, 177, 177, 177, 178, 178, 178, 179, 179,
	179, 180, 180, 180, 180, 181, 181, 181, 182, 182,
	182, 183, 183, 183, 183, 184, 184, 184, 185, 185,
	185, 186, 186, 186, 186, 187, 187, 187, 188, 188,
	188, 189, 189, 189, 189, 190, 190, 190, 191, 191,
	191, 192, 192, 192, 192, 193, 193, 193, 194, 194,
	194, 195, 195, 195, 195, 196, 196, 196, 197, 197,
	197, 198, 198, 198, 198, 199, 199, 199, 200, 200,
	200, 201, 201, 201, 201, 202, 202, 202, 203, 203,
	203, 204, 204, 204, 205, 205, 205, 205, 206, 206,
	206, 207, 207, 207, 208, 208, 208, 208, 209, 209,
	209, 210, 210, 210, 211, 211, 211, 211, 212, 212,
	212, 213, 213, 213, 214, 214, 214, 214, 215, 215,
	215, 216, 216, 216, 217, 217, 217, 217, 218, 218,
	218, 219, 219, 219, 220, 220, 220, 220, 221, 221,
	221, 222, 222, 222, 223, 223, 223, 223, 224, 224,
	224, 225, 225, 225, 226, 226, 226, 226, 227, 227,
	227, 228, 228, 228, 229, 229, 229, 229, 230, 230,
	230, 231, 231, 231, 232, 232, 232, 232, 233, 233,
	233, 234, 234, 234, 235, 235, 235, 236, 236, 236,
	236, 237, 237, 237, 238, 238, 238, 239, 239, 239,
	239, 240, 240, 240, 241, 241, 241, 242, 242, 242,
	242, 243, 243, 243, 244, 244, 244, 245, 245, 245,
	245, 246, 246, 246, 247, 247, 247, 248, 248, 248,
	248, 249, 249, 249, 250, 250, 250, 251, 251, 251,
	251, 252, 252, 252, 253, 253, 253, 254, 254, 254,
	254, 255, 255, 255, 256, 256, 256, 257, 257, 257,
	257, 258, 258, 258, 259, 259, 259, 260, 260, 260,
	260, 261, 261, 261, 262, 262, 262, 263, 263, 263,
	264, 264, 264, 264, 265, 265, 265, 266, 266, 266,
	267, 267, 267, 267, 268, 268, 268, 269, 269, 269,
	270, 270, 270, 270, 271, 271, 271, 272, 272, 272,
	273, 273, 273, 273, 274, 274, 274, 275, 275, 275,
	276, 276, 276, 276, 277, 277, 277, 278, 278, 278,
	279, 279, 279, 279, 280, 280, 280, 281, 281, 281,
	282, 282, 282, 282, 283, 283, 283, 284, 284, 284,
	285, 285, 285, 285, 286, 286, 286, 287, 287, 287,
	288, 288, 288, 288, 289, 289, 289, 290, 290, 290,
	291, 291, 291, 291, 292, 292, 292, 293, 293, 293,
	294, 294, 294, 295, 295, 295, 295, 296, 296, 296,
	297, 297, 297, 298, 298, 298, 298, 299, 299, 299,
	300, 300, 300, 301, 301, 301, 301, 302, 302, 302,
	303, 303, 303, 304, 304, 304, 304, 305, 305, 305,
	306, 306, 306, 307, 307, 307, 307, 308,
}

// monthday holds packed mm*100+dd values for the 366 days of a rebased
// civil year starting 0000-03-01 (index 0) through 0000-02-29 (index
// 365). It lets the date formatter recover a month/day pair from a
// day-of-rebased-year count without any leap-year branch.
var monthday = [366]uint16{
	301, 302, 303, 304, 305, 306, 307, 308, 309, 310, 311, 312, 313, 314, 315,
	316, 317, 318, 319, 320, 321, 322, 323, 324, 325, 326, 327, 328, 329, 330,
	331, 401, 402, 403, 404, 405, 406, 407, 408, 409, 410, 411, 412, 413, 414,
	415, 416, 417, 418, 419, 420, 421, 422, 423, 424, 425, 426, 427, 428, 429,
	430, 501, 502, 503, 504, 505, 506, 507, 508, 509, 510, 511, 512, 513, 514,
	515, 516, 517, 518, 519, 520, 521, 522, 523, 524, 525, 526, 527, 528, 529,
	530, 531, 601, 602, 603, 604, 605, 606, 607, 608, 609, 610, 611, 612, 613,
	614, 615, 616, 617, 618, 619, 620, 621, 622, 623, 624, 625, 626, 627, 628,
	629, 630, 701, 702, 703, 704, 705, 706, 707, 708, 709, 710, 711, 712, 713,
	714, 715, 716, 717, 718, 719, 720, 721, 722, 723, 724, 725, 726, 727, 728,
	729, 730, 731, 801, 802, 803, 804, 805, 806, 807, 808, 809, 810, 811, 812,
	813, 814, 815, 816, 817, 818, 819, 820, 821, 822, 823, 824, 825, 826, 827,
	828, 829, 830, 831, 901, 902, 903, 904, 905, 906, 907, 908, 909, 910, 911,
	912, 913, 914, 915, 916, 917, 918, 919, 920, 921, 922, 923, 924, 925, 926,
	927, 928, 929, 930, 1001, 1002, 1003, 1004, 1005, 1006, 1007, 1008, 1009, 1010, 1011,
	1012, 1013, 1014, 1015, 1016, 1017, 1018, 1019, 1020, 1021, 1022, 1023, 1024, 1025, 1026,
	1027, 1028, 1029, 1030, 1031, 1101, 1102, 1103, 1104, 1105, 1106, 1107, 1108, 1109, 1110,
	1111, 1112, 1113, 1114, 1115, 1116, 1117, 1118, 1119, 1120, 1121, 1122, 1123, 1124, 1125,
	1126, 1127, 1128, 1129, 1130, 1201, 1202, 1203, 1204, 1205, 1206, 1207, 1208, 1209, 1210,
	1211, 1212, 1213, 1214, 1215, 1216, 1217, 1218, 1219, 1220, 1221, 1222, 1223, 1224, 1225,
	1226, 1227, 1228, 1229, 1230, 1231, 101, 102, 103, 104, 105, 106, 107, 108, 109,
	110, 111, 112, 113, 114, 115, 116, 117, 118, 119, 120, 121, 122, 123, 124,
	125, 126, 127, 128, 129, 130, 131, 201, 202, 203, 204, 205, 206, 207, 208,
	209, 210, 211, 212, 213, 214, 215, 216, 217, 218, 219, 220, 221, 222, 223,
	224, 225, 226, 227, 228, 229,
}
