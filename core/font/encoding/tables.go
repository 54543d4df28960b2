package encoding

// runeNames maps Unicode code-points to PostScript glyph names for the
// repertoire of the supported 8-bit input encodings. Code-points missing
// here are named "uniXXXX".
var runeNames = map[rune]string{
	0x0020: "space",           // SP
	0x0021: "exclam",          // !
	0x0022: "quotedbl",        // "
	0x0023: "numbersign",      // #
	0x0024: "dollar",          // $
	0x0025: "percent",         // %
	0x0026: "ampersand",       // &
	0x0027: "quotesingle",     // '
	0x0028: "parenleft",       // (
	0x0029: "parenright",      // )
	0x002A: "asterisk",        // *
	0x002B: "plus",            // +
	0x002C: "comma",           // ,
	0x002D: "hyphen",          // -
	0x002E: "period",          // .
	0x002F: "slash",           // /
	0x0030: "zero",            // 0
	0x0031: "one",             // 1
	0x0032: "two",             // 2
	0x0033: "three",           // 3
	0x0034: "four",            // 4
	0x0035: "five",            // 5
	0x0036: "six",             // 6
	0x0037: "seven",           // 7
	0x0038: "eight",           // 8
	0x0039: "nine",            // 9
	0x003A: "colon",           // :
	0x003B: "semicolon",       // ;
	0x003C: "less",            // <
	0x003D: "equal",           // =
	0x003E: "greater",         // >
	0x003F: "question",        // ?
	0x0040: "at",              // @
	0x0041: "A",               // A
	0x0042: "B",               // B
	0x0043: "C",               // C
	0x0044: "D",               // D
	0x0045: "E",               // E
	0x0046: "F",               // F
	0x0047: "G",               // G
	0x0048: "H",               // H
	0x0049: "I",               // I
	0x004A: "J",               // J
	0x004B: "K",               // K
	0x004C: "L",               // L
	0x004D: "M",               // M
	0x004E: "N",               // N
	0x004F: "O",               // O
	0x0050: "P",               // P
	0x0051: "Q",               // Q
	0x0052: "R",               // R
	0x0053: "S",               // S
	0x0054: "T",               // T
	0x0055: "U",               // U
	0x0056: "V",               // V
	0x0057: "W",               // W
	0x0058: "X",               // X
	0x0059: "Y",               // Y
	0x005A: "Z",               // Z
	0x005B: "bracketleft",     // [
	0x005C: "backslash",       // \
	0x005D: "bracketright",    // ]
	0x005E: "asciicircum",     // ^
	0x005F: "underscore",      // _
	0x0060: "quoteleft",       // `
	0x0061: "a",               // a
	0x0062: "b",               // b
	0x0063: "c",               // c
	0x0064: "d",               // d
	0x0065: "e",               // e
	0x0066: "f",               // f
	0x0067: "g",               // g
	0x0068: "h",               // h
	0x0069: "i",               // i
	0x006A: "j",               // j
	0x006B: "k",               // k
	0x006C: "l",               // l
	0x006D: "m",               // m
	0x006E: "n",               // n
	0x006F: "o",               // o
	0x0070: "p",               // p
	0x0071: "q",               // q
	0x0072: "r",               // r
	0x0073: "s",               // s
	0x0074: "t",               // t
	0x0075: "u",               // u
	0x0076: "v",               // v
	0x0077: "w",               // w
	0x0078: "x",               // x
	0x0079: "y",               // y
	0x007A: "z",               // z
	0x007B: "braceleft",       // {
	0x007C: "bar",             // |
	0x007D: "braceright",      // }
	0x007E: "asciitilde",      // ~
	0x00A0: "space",           // NBSP
	0x00A1: "exclamdown",      // ¡
	0x00A2: "cent",            // ¢
	0x00A3: "sterling",        // £
	0x00A4: "currency",        // ¤
	0x00A5: "yen",             // ¥
	0x00A6: "brokenbar",       // ¦
	0x00A7: "section",         // §
	0x00A8: "dieresis",        // ¨
	0x00A9: "copyright",       // ©
	0x00AA: "ordfeminine",     // ª
	0x00AB: "guillemotleft",   // «
	0x00AC: "logicalnot",      // ¬
	0x00AD: "hyphen",          // SHY
	0x00AE: "registered",      // ®
	0x00AF: "macron",          // ¯
	0x00B0: "degree",          // °
	0x00B1: "plusminus",       // ±
	0x00B2: "twosuperior",     // ²
	0x00B3: "threesuperior",   // ³
	0x00B4: "acute",           // ´
	0x00B5: "mu",              // µ
	0x00B6: "paragraph",       // ¶
	0x00B7: "periodcentered",  // ·
	0x00B8: "cedilla",         // ¸
	0x00B9: "onesuperior",     // ¹
	0x00BA: "ordmasculine",    // º
	0x00BB: "guillemotright",  // »
	0x00BC: "onequarter",      // ¼
	0x00BD: "onehalf",         // ½
	0x00BE: "threequarters",   // ¾
	0x00BF: "questiondown",    // ¿
	0x00C0: "Agrave",          // À
	0x00C1: "Aacute",          // Á
	0x00C2: "Acircumflex",     // Â
	0x00C3: "Atilde",          // Ã
	0x00C4: "Adieresis",       // Ä
	0x00C5: "Aring",           // Å
	0x00C6: "AE",              // Æ
	0x00C7: "Ccedilla",        // Ç
	0x00C8: "Egrave",          // È
	0x00C9: "Eacute",          // É
	0x00CA: "Ecircumflex",     // Ê
	0x00CB: "Edieresis",       // Ë
	0x00CC: "Igrave",          // Ì
	0x00CD: "Iacute",          // Í
	0x00CE: "Icircumflex",     // Î
	0x00CF: "Idieresis",       // Ï
	0x00D0: "Eth",             // Ð
	0x00D1: "Ntilde",          // Ñ
	0x00D2: "Ograve",          // Ò
	0x00D3: "Oacute",          // Ó
	0x00D4: "Ocircumflex",     // Ô
	0x00D5: "Otilde",          // Õ
	0x00D6: "Odieresis",       // Ö
	0x00D7: "multiply",        // ×
	0x00D8: "Oslash",          // Ø
	0x00D9: "Ugrave",          // Ù
	0x00DA: "Uacute",          // Ú
	0x00DB: "Ucircumflex",     // Û
	0x00DC: "Udieresis",       // Ü
	0x00DD: "Yacute",          // Ý
	0x00DE: "Thorn",           // Þ
	0x00DF: "germandbls",      // ß
	0x00E0: "agrave",          // à
	0x00E1: "aacute",          // á
	0x00E2: "acircumflex",     // â
	0x00E3: "atilde",          // ã
	0x00E4: "adieresis",       // ä
	0x00E5: "aring",           // å
	0x00E6: "ae",              // æ
	0x00E7: "ccedilla",        // ç
	0x00E8: "egrave",          // è
	0x00E9: "eacute",          // é
	0x00EA: "ecircumflex",     // ê
	0x00EB: "edieresis",       // ë
	0x00EC: "igrave",          // ì
	0x00ED: "iacute",          // í
	0x00EE: "icircumflex",     // î
	0x00EF: "idieresis",       // ï
	0x00F0: "eth",             // ð
	0x00F1: "ntilde",          // ñ
	0x00F2: "ograve",          // ò
	0x00F3: "oacute",          // ó
	0x00F4: "ocircumflex",     // ô
	0x00F5: "otilde",          // õ
	0x00F6: "odieresis",       // ö
	0x00F7: "divide",          // ÷
	0x00F8: "oslash",          // ø
	0x00F9: "ugrave",          // ù
	0x00FA: "uacute",          // ú
	0x00FB: "ucircumflex",     // û
	0x00FC: "udieresis",       // ü
	0x00FD: "yacute",          // ý
	0x00FE: "thorn",           // þ
	0x00FF: "ydieresis",       // ÿ
	0x0102: "Abreve",          // Ă
	0x0103: "abreve",          // ă
	0x0104: "Aogonek",         // Ą
	0x0105: "aogonek",         // ą
	0x0106: "Cacute",          // Ć
	0x0107: "cacute",          // ć
	0x010C: "Ccaron",          // Č
	0x010D: "ccaron",          // č
	0x010E: "Dcaron",          // Ď
	0x010F: "dcaron",          // ď
	0x0110: "Dcroat",          // Đ
	0x0111: "dcroat",          // đ
	0x0118: "Eogonek",         // Ę
	0x0119: "eogonek",         // ę
	0x011A: "Ecaron",          // Ě
	0x011B: "ecaron",          // ě
	0x0131: "dotlessi",        // ı
	0x0139: "Lacute",          // Ĺ
	0x013A: "lacute",          // ĺ
	0x013D: "Lcaron",          // Ľ
	0x013E: "lcaron",          // ľ
	0x0141: "Lslash",          // Ł
	0x0142: "lslash",          // ł
	0x0143: "Nacute",          // Ń
	0x0144: "nacute",          // ń
	0x0147: "Ncaron",          // Ň
	0x0148: "ncaron",          // ň
	0x0150: "Ohungarumlaut",   // Ő
	0x0151: "ohungerumlaut",   // ő
	0x0152: "OE",              // Œ
	0x0153: "oe",              // œ
	0x0154: "Racute",          // Ŕ
	0x0155: "racute",          // ŕ
	0x0158: "Rcaron",          // Ř
	0x0159: "rcaron",          // ř
	0x015A: "Sacute",          // Ś
	0x015B: "sacute",          // ś
	0x015E: "Scedilla",        // Ş
	0x015F: "scedilla",        // ş
	0x0160: "Scaron",          // Š
	0x0161: "scaron",          // š
	0x0162: "Tcommaaccent",    // Ţ
	0x0163: "tcommaaccent",    // ţ
	0x0164: "Tcaron",          // Ť
	0x0165: "tcaron",          // ť
	0x016E: "Uring",           // Ů
	0x016F: "uring",           // ů
	0x0170: "Uhungarumlaut",   // Ű
	0x0171: "uhungarumlaut",   // ű
	0x0178: "Ydieresis",       // Ÿ
	0x0179: "Zacute",          // Ź
	0x017A: "zacute",          // ź
	0x017B: "Zdotaccent",      // Ż
	0x017C: "zdotaccent",      // ż
	0x017D: "Zcaron",          // Ž
	0x017E: "zcaron",          // ž
	0x0192: "florin",          // ƒ
	0x02C6: "circumflex",      // ˆ
	0x02C7: "caron",           // ˇ
	0x02D8: "breve",           // ˘
	0x02D9: "dotaccent",       // ˙
	0x02DA: "ring",            // ˚
	0x02DB: "ogonek",          // ˛
	0x02DC: "tilde",           // ˜
	0x02DD: "hungarumlaut",    // ˝
	0x2013: "endash",          // –
	0x2014: "emdash",          // —
	0x2018: "quoteleft",       // ‘
	0x2019: "quoteright",      // ’
	0x201A: "quotesinglbase",  // ‚
	0x201C: "quotedblleft",    // “
	0x201D: "quotedblright",   // ”
	0x201E: "quotedblbase",    // „
	0x2020: "dagger",          // †
	0x2021: "daggerdbl",       // ‡
	0x2022: "bullet",          // •
	0x2026: "ellipsis",        // …
	0x2030: "perthousand",     // ‰
	0x2039: "guilsinglleft",   // ‹
	0x203A: "guilsinglright",  // ›
	0x2044: "fraction",        // ⁄
	0x20AC: "Euro",            // €
	0x2122: "trademark",       // ™
	0x2212: "minus",           // −
	0xFB00: "ff",              // ﬀ
	0xFB01: "fi",              // ﬁ
	0xFB02: "fl",              // ﬂ
	0xFB03: "ffi",             // ﬃ
	0xFB04: "ffl",             // ﬄ
}

// corkEncoding is the T1 (Cork) font encoding. It is the default font encoding
// for fonts loaded without an encoding file.
var corkEncoding = [256]string{
	"grave", "acute", "circumflex", "tilde", "dieresis", "hungarumlaut", "ring", "caron",
	"breve", "macron", "dotaccent", "cedilla", "ogonek", "quotesinglbase", "guilsinglleft", "guilsinglright",
	"quotedblleft", "quotedblright", "quotedblbase", "guillemotleft", "guillemotright", "endash", "emdash", "compwordmark",
	"perthousandzero", "dotlessi", "dotlessj", "ff", "fi", "fl", "ffi", "ffl",
	"visualspace", "exclam", "quotedbl", "numbersign", "dollar", "percent", "ampersand", "quoteright",
	"parenleft", "parenright", "asterisk", "plus", "comma", "hyphen", "period", "slash",
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "colon", "semicolon", "less", "equal", "greater", "question",
	"at", "A", "B", "C", "D", "E", "F", "G",
	"H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W",
	"X", "Y", "Z", "bracketleft", "backslash", "bracketright", "asciicircum", "underscore",
	"quoteleft", "a", "b", "c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t", "u", "v", "w",
	"x", "y", "z", "braceleft", "bar", "braceright", "asciitilde", "hyphen",
	"Abreve", "Aogonek", "Cacute", "Ccaron", "Dcaron", "Ecaron", "Eogonek", "Gbreve",
	"Lacute", "Lcaron", "Lslash", "Nacute", "Ncaron", "Ng", "Ohungarumlaut", "Racute",
	"Rcaron", "Sacute", "Scaron", "Scedilla", "Tcaron", "Tcedilla", "Uhungarumlaut", "Uring",
	"Ydieresis", "Zacute", "Zcaron", "Zdotaccent", "IJ", "Idotaccent", "dbar", "section",
	"abreve", "aogonek", "cacute", "ccaron", "dcaron", "ecaron", "eogonek", "gbreve",
	"lacute", "lcaron", "lslash", "nacute", "ncaron", "ng", "ohungarumlaut", "racute",
	"rcaron", "sacute", "scaron", "scedilla", "tquoteright", "tcedilla", "uhungarumlaut", "uring",
	"ydieresis", "zacute", "zcaron", "zdotaccent", "ij", "exclamdown", "questiondown", "sterling",
	"Agrave", "Aacute", "Acircumflex", "Atilde", "Adieresis", "Aring", "AE", "Ccedilla",
	"Egrave", "Eacute", "Ecircumflex", "Edieresis", "Igrave", "Iacute", "Icircumflex", "Idieresis",
	"Eth", "Ntilde", "Ograve", "Oacute", "Ocircumflex", "Otilde", "Odieresis", "OE",
	"Oslash", "Ugrave", "Uacute", "Ucircumflex", "Udieresis", "Yacute", "Thorn", "Germandbls",
	"agrave", "aacute", "acircumflex", "atilde", "adieresis", "aring", "ae", "ccedilla",
	"egrave", "eacute", "ecircumflex", "edieresis", "igrave", "iacute", "icircumflex", "idieresis",
	"eth", "ntilde", "ograve", "oacute", "ocircumflex", "otilde", "odieresis", "oe",
	"oslash", "ugrave", "uacute", "ucircumflex", "udieresis", "yacute", "thorn", "germandbls",
}

// texBase1Encoding is the 8r-like TeXBase1 font encoding.
var texBase1Encoding = [256]string{
	"", "dotaccent", "fi", "fl", "fraction", "hungarumlaut", "Lslash", "lslash",
	"ogonek", "ring", "", "breve", "minus", "", "Zcaron", "zcaron",
	"caron", "dotlessi", "dotlessj", "ff", "ffi", "ffl", "", "",
	"", "", "", "", "", "", "grave", "quotesingle",
	"space", "exclam", "quotedbl", "numbersign", "dollar", "percent", "ampersand", "quoteright",
	"parenleft", "parenright", "asterisk", "plus", "comma", "hyphen", "period", "slash",
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "colon", "semicolon", "less", "equal", "greater", "question",
	"at", "A", "B", "C", "D", "E", "F", "G",
	"H", "I", "J", "K", "L", "M", "N", "O",
	"P", "Q", "R", "S", "T", "U", "V", "W",
	"X", "Y", "Z", "bracketleft", "backslash", "bracketright", "asciicircum", "underscore",
	"quoteleft", "a", "b", "c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l", "m", "n", "o",
	"p", "q", "r", "s", "t", "u", "v", "w",
	"x", "y", "z", "braceleft", "bar", "braceright", "asciitilde", "",
	"Euro", "", "quotesinglbase", "florin", "quotedblbase", "ellipsis", "dagger", "daggerdbl",
	"circumflex", "perthousand", "Scaron", "guilsinglleft", "OE", "", "", "",
	"", "", "", "quotedblleft", "quotedblright", "bullet", "endash", "emdash",
	"tilde", "trademark", "scaron", "guilsinglright", "oe", "", "", "Ydieresis",
	"", "exclamdown", "cent", "sterling", "currency", "yen", "brokenbar", "section",
	"dieresis", "copyright", "ordfeminine", "guillemotleft", "logicalnot", "hyphen", "registered", "macron",
	"degree", "plusminus", "twosuperior", "threesuperior", "acute", "mu", "paragraph", "periodcentered",
	"cedilla", "onesuperior", "ordmasculine", "guillemotright", "onequarter", "onehalf", "threequarters", "questiondown",
	"Agrave", "Aacute", "Acircumflex", "Atilde", "Adieresis", "Aring", "AE", "Ccedilla",
	"Egrave", "Eacute", "Ecircumflex", "Edieresis", "Igrave", "Iacute", "Icircumflex", "Idieresis",
	"Eth", "Ntilde", "Ograve", "Oacute", "Ocircumflex", "Otilde", "Odieresis", "multiply",
	"Oslash", "Ugrave", "Uacute", "Ucircumflex", "Udieresis", "Yacute", "Thorn", "germandbls",
	"agrave", "aacute", "acircumflex", "atilde", "adieresis", "aring", "ae", "ccedilla",
	"egrave", "eacute", "ecircumflex", "edieresis", "igrave", "iacute", "icircumflex", "idieresis",
	"eth", "ntilde", "ograve", "oacute", "ocircumflex", "otilde", "odieresis", "divide",
	"oslash", "ugrave", "uacute", "ucircumflex", "udieresis", "yacute", "thorn", "ydieresis",
}
