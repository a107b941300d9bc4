package abbrev

// stdPairs is the standard dictionary as long name, abbreviation pairs.
// Entries are added in order, so the first mapping for a name or an
// abbreviation wins.
var stdPairs = [][2]string{
	{"name", "nm"}, {"title", "tt"}, {"description", "ds"},
	{"label", "lb"}, {"alias", "al"}, {"unique_id", "uid"},
	{"handle", "hdl"}, {"nickname", "nick"}, {"display_name", "disp"},
	{"abbreviation", "abbr"}, {"reference", "ref"}, {"status", "st"},
	{"active", "ac"}, {"enabled", "en"}, {"visible", "vs"},
	{"locked", "lk"}, {"archived", "ar"}, {"deleted", "dl"},
	{"completed", "cp"}, {"pending", "pn"}, {"published", "pub"},
	{"draft", "drft"}, {"approved", "appr"}, {"rejected", "rej"},
	{"suspended", "susp"}, {"expired", "exp"}, {"cancelled", "canc"},
	{"processing", "proc"}, {"failed", "fail"}, {"success", "succ"},
	{"ready", "rdy"}, {"created", "cr"}, {"updated", "up"},
	{"date", "dt"}, {"time", "tm"}, {"timestamp", "ts"},
	{"expires", "ex"}, {"duration", "du"}, {"year", "yr"},
	{"month", "mo"}, {"day", "dy"}, {"hour", "hr"},
	{"minute", "mn"}, {"second", "sec"}, {"millisecond", "ms"},
	{"timezone", "tz"}, {"start", "strt"}, {"scheduled", "schd"},
	{"deadline", "dln"}, {"count", "ct"}, {"total", "tl"},
	{"amount", "am"}, {"price", "pr"}, {"quantity", "qt"},
	{"kilometers", "km"}, {"miles", "mi"}, {"elevation", "el"},
	{"rating", "rt"}, {"score", "sc"}, {"rank", "rk"},
	{"percent", "pct"}, {"average", "avg"}, {"minimum", "min"},
	{"maximum", "max"}, {"median", "med"}, {"standard_deviation", "std"},
	{"variance", "var"}, {"index", "idx"}, {"position", "pos"},
	{"order", "ord"}, {"sequence", "seq"}, {"number", "num"},
	{"width", "wd"}, {"height", "ht"}, {"size", "sz"},
	{"length", "len"}, {"depth", "dp"}, {"weight", "wt"},
	{"volume", "vol"}, {"radius", "rad"}, {"diameter", "dia"},
	{"capacity", "cap"}, {"resolution", "res"}, {"aspect_ratio", "asp"},
	{"scale", "scl"}, {"url", "ur"}, {"path", "pt"},
	{"link", "lnk"}, {"source", "src"}, {"destination", "dst"},
	{"domain", "dom"}, {"endpoint", "ep"}, {"method", "mth"},
	{"header", "hdr"}, {"body", "bdy"}, {"query", "qry"},
	{"param", "prm"}, {"response", "rsp"}, {"request", "req"},
	{"ip_address", "ip"}, {"protocol", "prot"}, {"certificate", "cert"},
	{"email", "em"}, {"phone", "ph"}, {"address", "ad"},
	{"first_name", "fn"}, {"last_name", "lnm"}, {"company", "cmp"},
	{"date_of_birth", "dob"}, {"gender", "gen"}, {"biography", "bio"},
	{"avatar", "avt"}, {"profile", "prof"}, {"preferences", "pref"},
	{"language", "lang"}, {"country_code", "cntry"}, {"mobile", "mob"},
	{"city", "cy"}, {"country", "co"}, {"region", "rg"},
	{"zipcode", "zp"}, {"latitude", "la"}, {"longitude", "lo"},
	{"location", "loc"}, {"street_address", "addr"}, {"address_line_2", "st2"},
	{"province", "prov"}, {"district", "dist"}, {"building", "bldg"},
	{"floor", "flr"}, {"color", "cl"}, {"background", "bg"},
	{"foreground", "fg"}, {"image", "im"}, {"icon", "ic"},
	{"thumbnail", "th"}, {"video", "vid"}, {"audio", "aud"},
	{"format", "fmt"}, {"mime_type", "mime"}, {"extension", "ext"},
	{"file_size", "fsize"}, {"bitrate", "bps"}, {"framerate", "fps"},
	{"parent", "pa"}, {"children", "ch"}, {"user", "us"},
	{"owner", "ow"}, {"author", "au"}, {"editor", "ed"},
	{"reviewer", "rv"}, {"assignee", "asg"}, {"member", "mb"},
	{"group", "gp"}, {"team", "tea"}, {"organization", "org"},
	{"department", "dept"}, {"manager", "mgr"}, {"supervisor", "sup"},
	{"subordinate", "sub"}, {"ancestor", "anc"}, {"descendant", "desc"},
	{"sibling", "sib"}, {"category", "ca"}, {"tags", "tg"},
	{"type", "tp"}, {"value", "vl"}, {"key", "ky"},
	{"mode", "md"}, {"level", "lv"}, {"priority", "pri"},
	{"version", "vr"}, {"class", "cls"}, {"group_type", "grp"},
	{"ranking", "rank"}, {"workspace", "ws"}, {"repository", "repo"},
	{"container", "cont"}, {"ci_cd", "ci"}, {"editors", "eds"},
	{"project", "proj"}, {"environment", "env"}, {"config", "cfg"},
	{"settings", "sett"}, {"options", "opt"}, {"feature", "feat"},
	{"module", "mod"}, {"package", "pkg"}, {"dependency", "dep"},
	{"library", "lib"}, {"sku", "sk"}, {"customer", "cu"},
	{"shipping", "sh"}, {"paid", "pd"}, {"invoice", "inv"},
	{"product", "prd"}, {"discount", "dsc"}, {"tax", "tx"},
	{"currency", "curr"}, {"balance", "bal"}, {"credit", "cred"},
	{"debit", "deb"}, {"grand_total", "grt"}, {"payment", "pay"},
	{"refund", "refnd"}, {"checkout", "chk"}, {"billing", "bill"},
	{"text", "txt"}, {"message", "msg"}, {"comment", "cmt"},
	{"note", "nt"}, {"content", "cnt"}, {"footer", "ft"},
	{"paragraph", "para"}, {"section", "sect"}, {"chapter", "chap"},
	{"article", "art"}, {"subject", "subj"}, {"password", "pwd"},
	{"token", "tok"}, {"session", "sess"}, {"permission", "perm"},
	{"authorization", "auth"}, {"access_control", "acl"}, {"encrypted", "enc"},
	{"signature", "sig"}, {"api_key", "key"}, {"two_factor", "2fa"},
	{"one_time_password", "otp"}, {"database", "db"}, {"table", "tbl"},
	{"column", "col"}, {"record", "rec"}, {"field", "fld"},
	{"severity", "sev"}, {"fixable", "fix"}, {"recommended", "recom"},
	{"formatter", "fmtr"}, {"prefix", "pfx"}, {"documentation", "docs"},
	{"warning", "warn"}, {"error", "err"}, {"linter", "lint"},
}
