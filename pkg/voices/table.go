package voices

// Speaker is one selectable persona within a (possibly multi-speaker) voice model.
type Speaker struct {
	Voice  string
	ID     string
	Gender string
}

// defaultVoices maps a language tag to the voice used when a request names only
// a language. Tags missing here resolve through their primary subtag, see Directory.
// TODO(data): several rostered languages below still have no default voice entry.
var defaultVoices = map[string]string{
	"en":    "en_US/cmu-arctic_low",
	"en-uk": "en_UK/apope_low",
	"en-gb": "en_UK/apope_low",
	"de":    "de_DE/thorsten_low",
	"bn":    "bn/multi_low",
	"af":    "af_ZA/google-nwu_low",
	"es":    "es_ES/m-ailabs_low",
	"fa":    "fa/haaniye_low",
	"fi":    "fi_FI/harri-tapani-ylilammi_low",
	"fr":    "fr_FR/m-ailabs_low",
	"it":    "it_IT/mls_low",
	"ko":    "ko_KO/kss_low",
	"nl":    "nl/bart-de-leeuw_low",
	"pl":    "pl_PL/m-ailabs_low",
	"ru":    "ru_RU/multi_low",
	"uk":    "uk_UK/m-ailabs_low",
}

// multi expands one multi-speaker voice model into roster rows. Gender stays
// blank where the upstream inventory does not annotate it.
func multi(voice string, ids ...string) []Speaker {
	out := make([]Speaker, 0, len(ids))
	for _, id := range ids {
		out = append(out, Speaker{Voice: voice, ID: id})
	}
	return out
}

func concat(groups ...[]Speaker) []Speaker {
	var out []Speaker
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// speakersByLang is the full Mimic3 speaker inventory keyed by language tag.
var speakersByLang = map[string][]Speaker{
	"af-za": multi("af_ZA/google-nwu_low",
		"7214", "8963", "7130", "8924", "8148", "1919", "2418", "6590", "0184"),
	"bn": multi("bn/multi_low",
		"rm", "03042", "00737", "01232", "02194", "3108", "3713", "1010",
		"00779", "9169", "4046", "5958", "01701", "4811", "0834", "3958"),
	"de-de": concat(
		multi("de_DE/thorsten_low", "default"),
		multi("de_DE/thorsten-emotion_low",
			"amused", "angry", "disgusted", "drunk", "neutral", "sleepy",
			"surprised", "whisper"),
		multi("de_DE/m-ailabs_low",
			"ramona_deininger", "karlsson", "rebecca_braunert_plunkett",
			"eva_k", "angela_merkel"),
	),
	"el-gr": multi("el_GR/rapunzelina_low", "default"),
	"en-uk": {
		{Voice: "en_UK/apope_low", ID: "default", Gender: "male"},
	},
	"en-us": concat(
		[]Speaker{
			{Voice: "en_US/cmu-arctic_low", ID: "slt", Gender: "female"},
			{Voice: "en_US/cmu-arctic_low", ID: "awb", Gender: "male"},
			{Voice: "en_US/cmu-arctic_low", ID: "rms", Gender: "male"},
			{Voice: "en_US/cmu-arctic_low", ID: "ksp", Gender: "male"},
			{Voice: "en_US/cmu-arctic_low", ID: "clb", Gender: "female"},
			{Voice: "en_US/cmu-arctic_low", ID: "aew", Gender: "male"},
			{Voice: "en_US/cmu-arctic_low", ID: "bdl", Gender: "male"},
			{Voice: "en_US/cmu-arctic_low", ID: "lnh", Gender: "female"},

			{Voice: "en_US/hifi-tts_low", ID: "9017", Gender: "male"},
			{Voice: "en_US/hifi-tts_low", ID: "6097", Gender: "male"},
			{Voice: "en_US/hifi-tts_low", ID: "92", Gender: "female"},

			{Voice: "en_US/ljspeech_low", ID: "default", Gender: "female"},

			{Voice: "en_US/m-ailabs_low", ID: "elliot_miller", Gender: "male"},
			{Voice: "en_US/m-ailabs_low", ID: "judy_bieber", Gender: "female"},
			{Voice: "en_US/m-ailabs_low", ID: "mary_ann", Gender: "female"},
		},
		multi("en_US/vctk_low",
			"p239", "p236", "p264", "p250", "p259", "p247", "p261", "p263",
			"p283", "p274", "p286", "p276", "p270", "p281", "p277", "p231",
			"p238", "p271", "p257", "p273", "p284", "p329", "p361", "p287",
			"p360", "p374", "p376", "p310", "p304", "p340", "p347", "p330",
			"p308", "p314", "p317", "p339", "p311", "p294", "p305", "p266",
			"p335", "p334", "p318", "p323", "p351", "p333", "p313", "p316",
			"p244", "p307", "p363", "p336", "p312", "p267", "p297", "p275",
			"p295", "p288", "p258", "p301", "p232", "p292", "p272", "p278",
			"p280", "p341", "p268", "p298", "p299", "p279", "p285", "p326",
			"p300", "s5", "p230", "p254", "p269", "p293", "p252", "p345",
			"p262", "p243", "p227", "p343", "p255", "p229", "p240", "p248",
			"p253", "p233", "p228", "p251", "p282", "p246", "p234", "p226",
			"p260", "p245", "p241", "p303", "p265", "p306", "p237", "p249",
			"p256", "p302", "p364", "p225", "p362"),
	),
	"es-es": concat(
		multi("es_ES/carlfm_low", "default"),
		multi("es_ES/m-ailabs_low", "tux", "victor_villarraza", "karen_savage"),
	),
	"fa":    multi("fa/haaniye_low", "default"),
	"fi-fi": multi("fi_FI/harri-tapani-ylilammi_low", "default"),
	"fr-fr": concat(
		multi("fr_FR/m-ailabs_low",
			"ezwa", "nadine_eckert_boulet", "bernard", "zeckou",
			"gilles_g_le_blanc"),
		multi("fr_FR/siwis_low", "default"),
		multi("fr_FR/tom_low", "default"),
	),
	"gu-in": multi("gu_IN/cmu-indic_low",
		"cmu_indic_guj_dp", "cmu_indic_guj_ad", "cmu_indic_guj_kt"),
	"ha-ne": multi("ha_NE/openbible_low", "default"),
	"hu-hu": multi("hu_HU/diana-majlinger_low", "default"),
	"it-it": concat(
		multi("it_IT/riccardo-fasol_low", "default"),
		multi("it_IT/mls_low",
			"1595", "4974", "4998", "6807", "1989", "2033", "2019", "659",
			"4649", "9772", "1725", "10446", "6348", "6001", "9185", "8842",
			"8828", "12428", "8181", "7440", "8207", "277", "5421", "12804",
			"4705", "7936", "844", "6299", "644", "8384", "1157", "7444",
			"643", "4971", "4975", "6744", "8461", "7405", "5010"),
	),
	"jv-id": multi("jv_ID/google-gmu_low",
		"07875", "05522", "03424", "06510", "03314", "03187", "07638",
		"06207", "08736", "04679", "01392", "05540", "05219", "00027",
		"00264", "09724", "04588", "09039", "04285", "05970", "08305",
		"04982", "08002", "06080", "07765", "02326", "03727", "04175",
		"06383", "02884", "06941", "08178", "00658", "04715", "05667",
		"01519", "07335", "02059", "01932"),
	"ko-ko": multi("ko_KO/kss_low", "default"),
	"ne-np": multi("ne_NP/ne-google_low",
		"0546", "3614", "2099", "3960", "6834", "7957", "6329", "9407",
		"6587", "0258", "2139", "5687", "0283", "3997", "3154", "0883",
		"2027", "0649"),
	"nl": concat(
		multi("nl/bart-de-leeuw_low", "default"),
		multi("nl/flemishguy_low", "default"),
		multi("nl/nathalie_low", "default"),
		multi("nl/pmk_low", "default"),
		multi("nl/rdh_low", "default"),
	),
	"pl-pl": multi("pl_PL/m-ailabs_low", "piotr_nater", "nina_brown"),
	"ru-ru": multi("ru_RU/multi_low", "hajdurova", "minaev", "nikolaev"),
	"sw":    multi("sw/lanfrica_low", "default"),
	"te-in": multi("te_IN/cmu-indic_low", "ss", "sk", "kpn"),
	"tn-za": multi("tn_ZA/google-nwu_low",
		"1932", "0045", "3342", "4850", "6206", "3629", "9061", "6116",
		"7674", "0378", "5628", "8333", "8512", "0441", "6459", "4506",
		"7866", "8532", "2839", "7896", "1498", "1483", "8914", "6234",
		"9365", "7693"),
	"uk-uk": multi("uk_UK/m-ailabs_low",
		"obruchov", "shepel", "loboda", "miskun", "sumska", "pysariev"),
	"vi-vn": multi("vi_VN/vais1000_low", "default"),
	"yo":    multi("yo/openbible_low", "default"),
}
