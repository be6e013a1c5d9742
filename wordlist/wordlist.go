// Package wordlist loads the 5 letter word lists the solver feeds on. The
// canonical on-disk format is a YAML sequence of words; plain one word per
// line files work too. A small built-in list keeps the CLI usable without
// any file at all.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML sequence of words, e.g.
//
//	- crane
//	- slate
func LoadYAML(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return validate(path, words)
}

// LoadLines reads a file with one word per line, blank lines ignored.
func LoadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	words := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return validate(path, words)
}

// Load picks the loader from the file extension.
func Load(path string) ([]string, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return LoadYAML(path)
	}
	return LoadLines(path)
}

func validate(path string, words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: no words", path)
	}
	for _, word := range words {
		if len(word) != 5 {
			return nil, fmt.Errorf("%s: not a 5 letter word: %q", path, word)
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("%s: word must be lowercase a-z: %q", path, word)
			}
		}
	}
	return words, nil
}

// Default returns the built-in word list.
func Default() []string {
	ret := make([]string, len(defaultWords))
	copy(ret, defaultWords)
	return ret
}

var defaultWords = []string{
	"aback", "abase", "abate", "abbey", "abide", "about", "above", "abuse",
	"actor", "acute", "adapt", "admit", "adobe", "adult", "again", "agent",
	"agile", "aging", "agree", "ahead", "aisle", "alarm", "album", "alert",
	"alien", "align", "alike", "alive", "alley", "allow", "alloy", "alone",
	"along", "aloud", "alpha", "altar", "alter", "amber", "amble", "amend",
	"ample", "angel", "anger", "angle", "angry", "ankle", "annex", "annoy",
	"apart", "apple", "apply", "arena", "argue", "arise", "armor", "aroma",
	"arose", "array", "arrow", "aside", "asset", "atone", "audio", "audit",
	"avail", "avoid", "await", "awake", "award", "aware", "awful", "bacon",
	"badge", "bagel", "baker", "balmy", "banjo", "barge", "basic", "basil",
	"basin", "batch", "beach", "beard", "beast", "began", "begin", "being",
	"belly", "below", "bench", "berry", "birth", "black", "blade", "blame",
	"bland", "blank", "blast", "blaze", "bleak", "blend", "bless", "blind",
	"block", "bloom", "blunt", "blush", "board", "boast", "bonus", "boost",
	"booth", "bound", "brace", "brain", "brake", "brand", "brave", "bread",
	"break", "brick", "bride", "brief", "bring", "brink", "brisk", "broad",
	"broke", "brook", "broom", "brown", "brush", "build", "built", "bunch",
	"burst", "cabin", "cable", "cacao", "cadet", "camel", "canal", "candy",
	"canoe", "cargo", "carry", "carve", "catch", "cater", "cause", "cease",
	"cedar", "chain", "chair", "chalk", "charm", "chart", "chase", "cheap",
	"check", "cheek", "cheer", "chess", "chest", "chief", "child", "chill",
	"choir", "chord", "chose", "cider", "cigar", "civic", "civil", "claim",
	"clash", "clasp", "class", "clean", "clear", "clerk", "click", "cliff",
	"climb", "cling", "cloak", "clock", "close", "cloth", "cloud", "clown",
	"coach", "coast", "cocoa", "colon", "color", "comet", "comic", "coral",
	"couch", "could", "count", "court", "cover", "crack", "craft", "crane",
	"crash", "crate", "crave", "crawl", "craze", "cream", "creed", "creek",
	"crept", "crest", "crisp", "cross", "crowd", "crown", "crude", "cruel",
	"crumb", "crush", "crust", "curly", "curve", "cycle", "daily", "dairy",
	"dance", "dealt", "death", "debut", "decay", "decor", "delay", "delta",
	"dense", "depth", "derby", "detox", "devil", "diary", "digit", "diner",
	"dirty", "ditch", "dizzy", "dodge", "doing", "donor", "doubt", "dough",
	"dozen", "draft", "drain", "drama", "drank", "dream", "dress", "dried",
	"drift", "drill", "drink", "drive", "drone", "drove", "dwell", "eager",
	"eagle", "early", "earth", "easel", "eaten", "ebony", "edict", "eight",
	"elbow", "elder", "elect", "elite", "email", "ember", "empty", "enact",
	"endow", "enemy", "enjoy", "enter", "entry", "envoy", "equal", "equip",
	"erase", "erode", "error", "erupt", "essay", "ethic", "evade", "event",
	"every", "evoke", "exact", "exalt", "excel", "exert", "exile", "exist",
	"extra", "fable", "facet", "faint", "fairy", "faith", "false", "fancy",
	"fatal", "fault", "favor", "feast", "fence", "ferry", "fetch", "fever",
	"fiber", "field", "fiery", "fifth", "fifty", "fight", "final", "first",
	"flame", "flash", "fleet", "flesh", "flick", "fling", "flint", "float",
	"flock", "flood", "floor", "flour", "fluid", "flute", "focal", "focus",
	"foggy", "force", "forge", "forth", "forum", "found", "frame", "fraud",
	"fresh", "front", "frost", "fruit", "fudge", "fully", "funny", "gauge",
	"gaunt", "gavel", "gecko", "genre", "ghost", "giant", "giddy", "given",
	"gland", "glare", "glass", "gleam", "glide", "globe", "gloom", "glory",
	"gloss", "glove", "going", "goose", "gorge", "grace", "grade", "grain",
	"grand", "grant", "grape", "graph", "grasp", "grass", "grave", "graze",
	"great", "green", "greet", "grief", "grill", "grind", "groan", "groom",
	"group", "grove", "growl", "grown", "guard", "guess", "guest", "guide",
	"guild", "guilt", "habit", "handy", "happy", "hardy", "haste", "hatch",
	"haunt", "haven", "heard", "heart", "heath", "heavy", "hedge", "heron",
	"hinge", "hoist", "honey", "honor", "horse", "hotel", "hotly", "hound",
	"house", "hover", "human", "humid", "humor", "hurry", "ideal", "image",
	"imply", "inbox", "index", "inner", "input", "irate", "irony", "issue",
	"ivory", "jelly", "jewel", "joint", "jolly", "judge", "juice", "karma",
	"kayak", "kneel", "knife", "knock", "known", "label", "labor", "lager",
	"lance", "large", "laser", "later", "laugh", "layer", "learn", "least",
	"leave", "ledge", "legal", "lemon", "level", "lever", "light", "lilac",
	"limit", "linen", "liver", "lobby", "local", "lodge", "logic", "loose",
	"lorry", "loyal", "lucid", "lucky", "lunar", "lunch", "lyric", "macro",
	"madam", "magic", "major", "mango", "manor", "maple", "march", "marsh",
	"match", "mayor", "meant", "medal", "media", "melon", "mercy", "merge",
	"merit", "merry", "metal", "meter", "midst", "might", "mimic", "minor",
	"minus", "mirth", "model", "moist", "money", "month", "moral", "motel",
	"motor", "mound", "mount", "mouse", "mouth", "movie", "mural", "music",
	"naive", "nasal", "naval", "nerve", "never", "newly", "niche", "night",
	"ninth", "noble", "noise", "north", "notch", "novel", "nurse", "oasis",
	"occur", "ocean", "offer", "often", "olive", "onion", "onset", "opera",
	"orbit", "order", "organ", "other", "otter", "ought", "ounce", "outer",
	"owner", "oxide", "ozone", "paint", "panel", "panic", "paper", "party",
	"pasta", "patch", "patio", "pause", "peace", "peach", "pearl", "pedal",
	"penny", "perch", "petal", "phase", "phone", "photo", "piano", "piece",
	"pilot", "pinch", "pitch", "pivot", "pixel", "pizza", "place", "plain",
	"plane", "plank", "plant", "plate", "plaza", "plead", "pluck", "plumb",
	"plume", "point", "polar", "porch", "pouch", "pound", "power", "press",
	"price", "pride", "prime", "print", "prior", "prism", "prize", "probe",
	"prone", "proof", "proud", "prove", "proxy", "prune", "pulse", "punch",
	"pupil", "purse", "queen", "query", "quest", "queue", "quick", "quiet",
	"quilt", "quirk", "quota", "quote", "radar", "radio", "raise", "rally",
	"ranch", "range", "rapid", "ratio", "reach", "react", "ready", "realm",
	"rebel", "rebut", "recap", "refer", "reign", "relax", "relay", "remit",
	"renew", "repay", "reply", "resin", "retro", "rhyme", "ridge", "rifle",
	"right", "rigid", "rinse", "ripen", "risen", "riser", "rival", "river",
	"roast", "robin", "robot", "rocky", "rogue", "roost", "rotor", "rouge",
	"rough", "round", "route", "royal", "rugby", "ruler", "rural", "rusty",
	"sadly", "safer", "salad", "salon", "salsa", "salty", "saner", "sauce",
	"scale", "scant", "scare", "scarf", "scene", "scent", "scoop", "scope",
	"score", "scout", "scrap", "screw", "scrub", "sedan", "seize", "sense",
	"serve", "setup", "seven", "shade", "shaft", "shake", "shall", "shame",
	"shape", "share", "shark", "sharp", "shave", "sheep", "sheet", "shelf",
	"shell", "shift", "shine", "shiny", "shirt", "shock", "shore", "short",
	"shout", "shown", "shrub", "sight", "sigma", "since", "siren", "sixth",
	"sixty", "skate", "skill", "skirt", "skull", "slate", "sleek", "sleep",
	"slice", "slide", "slope", "small", "smart", "smile", "smoke", "snack",
	"snake", "snare", "sneak", "solar", "solid", "solve", "sonar", "sonic",
	"sorry", "sound", "south", "space", "spare", "spark", "speak", "spear",
	"speed", "spell", "spend", "spice", "spike", "spine", "spite", "split",
	"spoke", "sport", "spray", "squad", "stack", "staff", "stage", "stain",
	"stair", "stake", "stale", "stand", "stare", "start", "state", "steam",
	"steel", "steep", "steer", "stern", "stick", "stiff", "still", "sting",
	"stink", "stock", "stone", "stood", "store", "storm", "story", "stout",
	"stove", "strap", "straw", "strip", "study", "stuff", "style", "sugar",
	"suite", "sunny", "super", "surge", "swamp", "swear", "sweat", "sweep",
	"sweet", "swell", "swift", "swing", "sworn", "syrup", "table", "taken",
	"tally", "tango", "taste", "teach", "tempo", "tenor", "tense", "tenth",
	"thank", "theft", "theme", "there", "thick", "thief", "thing", "think",
	"third", "thorn", "three", "throw", "thumb", "tiger", "tight", "timer",
	"title", "toast", "today", "token", "tonic", "tooth", "topic", "torch",
	"total", "touch", "tough", "towel", "tower", "toxic", "trace", "track",
	"trade", "trail", "train", "trait", "trash", "tread", "treat", "trend",
	"trial", "tribe", "trick", "troop", "trout", "truck", "truly", "trunk",
	"trust", "truth", "tulip", "tumor", "tutor", "twang", "tweed", "twice",
	"twist", "udder", "ultra", "uncle", "under", "union", "unite", "unity",
	"until", "upper", "upset", "urban", "usage", "usher", "usual", "utter",
	"vague", "valid", "value", "valve", "vapor", "vault", "venue", "verse",
	"video", "vigor", "vinyl", "viola", "viper", "virus", "visit", "vital",
	"vivid", "vocal", "vodka", "vogue", "voice", "voter", "vouch", "vowel",
	"wagon", "waist", "waste", "watch", "water", "weary", "weave", "wedge",
	"weigh", "weird", "whale", "wheat", "wheel", "where", "which", "while",
	"white", "whole", "widen", "width", "wight", "witty", "woman", "world",
	"worry", "worse", "worst", "worth", "would", "wound", "woven", "wrath",
	"wreck", "wrist", "write", "wrong", "wrote", "yacht", "yeast", "yield",
	"young", "youth", "zebra", "zesty", "zonal",
}
