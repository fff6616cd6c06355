package safety

import "strings"

// phraseTier is an ordered (most-severe-first) list of plain-text phrases
// checked via case-insensitive substring containment, exactly like
// l1_safety.py's SafetyCheck._contains_pattern. No regex is needed here:
// the source itself uses plain substring matching for crisis phrases,
// deliberately — crisis phrasing is caught more reliably by literal
// phrase lists than by regex families (unlike I15's structural patterns).
type phraseTier struct {
	level    CrisisLevel
	phrases  []string
	reason   string
}

func containsAny(textLower string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if strings.Contains(textLower, strings.ToLower(p)) {
			return p, true
		}
	}
	return "", false
}

var suicidalTiers = []phraseTier{
	{LevelCritical, []string{
		"i want to kill myself", "i want to die", "i'm going to kill myself",
		"i'm going to end my life", "planning to kill myself", "planning my suicide",
		"goodbye forever", "this is my suicide note", "i have a plan to",
		"i've decided to end",
	}, "Expressed immediate suicidal intent or plan"},
	{LevelAlert, []string{
		"wish i was dead", "wish i wasn't alive", "better off dead",
		"world would be better without me", "no reason to live",
		"nothing to live for", "don't want to be here anymore",
		"can't do this anymore", "tired of living", "want to disappear forever",
	}, "Expressed thoughts of death or worthlessness"},
	{LevelWatch, []string{
		"thoughts of death", "thinking about dying", "sometimes i think about",
		"wondered what it would be like", "thought about not being here",
	}, "Mentioned thoughts about death or dying"},
}

var selfHarmTiers = []phraseTier{
	{LevelCritical, []string{
		"cutting myself", "going to cut myself", "burning myself",
		"going to hurt myself", "harming myself right now", "about to hurt myself",
	}, "Expressed immediate self-harm intent or action"},
	{LevelAlert, []string{
		"want to cut", "want to hurt myself", "urge to cut", "urge to harm",
		"thinking about cutting", "thinking about hurting myself", "need to hurt myself",
	}, "Expressed urges or thoughts of self-harm"},
	{LevelWatch, []string{
		"used to cut", "history of self-harm", "sometimes i hurt myself",
		"struggled with cutting",
	}, "Mentioned history of self-harm"},
}

var abuseTiers = []phraseTier{
	{LevelCritical, []string{
		"he's going to hurt me", "she's going to hurt me", "they're going to hurt me",
		"afraid for my life", "going to kill me", "threatening to kill",
		"he hit me today", "she hit me today", "locked me in", "won't let me leave",
	}, "Expressed immediate danger from another person"},
	{LevelAlert, []string{
		"he hurts me", "she hurts me", "they hurt me", "physically abuses",
		"sexually abuses", "afraid of him", "afraid of her", "afraid to go home",
		"hits me when", "threatens me",
	}, "Described ongoing abuse or fear of harm"},
	{LevelWatch, []string{
		"was abused", "used to hurt me", "history of abuse", "experienced abuse",
	}, "Mentioned history of abuse"},
}

var acuteCrisisTiers = []phraseTier{
	{LevelCritical, []string{
		"can't breathe", "heart is racing", "feel like i'm dying",
		"losing touch with reality", "voices telling me", "seeing things that aren't",
		"can't tell what's real", "dissociating badly",
	}, "Expressed severe acute mental health symptoms"},
	{LevelAlert, []string{
		"panic attack", "can't stop shaking", "feel like i'm going crazy",
		"losing my mind", "everything feels unreal", "can't function",
		"can't stop crying", "haven't slept in days",
	}, "Expressed acute distress or crisis symptoms"},
}
