package safety

// Resources is a jurisdiction-parameterized set of crisis resource
// strings, keyed by the same jurisdiction codes pkg/config uses elsewhere.
// SPEC_FULL.md's supplemented feature #6: resource lists are config, not
// code — l1_safety.py hardcodes US hotlines inline; this implementation
// carries them as a built-in default that pkg/config can override.
type Resources struct {
	SuicidalCritical []string
	SuicidalAlert    []string
	SuicidalWatch    []string
	SelfHarmCritical []string
	SelfHarmAlert    []string
	SelfHarmWatch    []string
	AbuseCritical    []string
	AbuseAlert       []string
	AbuseWatch       []string
	CrisisCritical   []string
	CrisisAlert      []string
}

// DefaultResources is the built-in US jurisdiction default, matching
// l1_safety.py's hardcoded hotline lists and spec.md's S3 scenario
// ("a '988' reference (or jurisdiction equivalent)").
func DefaultResources() Resources {
	return Resources{
		SuicidalCritical: []string{
			"988 Suicide & Crisis Lifeline (US): 988 or 1-800-273-8255",
			"Crisis Text Line: Text HOME to 741741",
			"International: findahelpline.com",
			"Emergency: 911 (US) or local emergency services",
		},
		SuicidalAlert: []string{
			"988 Suicide & Crisis Lifeline (US): 988",
			"Crisis Text Line: Text HOME to 741741",
			"International: findahelpline.com",
		},
		SuicidalWatch: []string{
			"988 Suicide & Crisis Lifeline (US): 988",
			"Crisis Text Line: Text HOME to 741741",
		},
		SelfHarmCritical: []string{
			"988 Suicide & Crisis Lifeline (US): 988",
			"Crisis Text Line: Text HOME to 741741",
			"Emergency: 911 (US) or local emergency services",
		},
		SelfHarmAlert: []string{
			"988 Suicide & Crisis Lifeline (US): 988",
			"Crisis Text Line: Text HOME to 741741",
		},
		SelfHarmWatch: []string{
			"988 Suicide & Crisis Lifeline (US): 988",
			"Crisis Text Line: Text HOME to 741741",
		},
		AbuseCritical: []string{
			"National Domestic Violence Hotline: 1-800-799-7233",
			"Emergency: 911 (US) or local emergency services",
			"RAINN (sexual assault): 1-800-656-4673",
		},
		AbuseAlert: []string{
			"National Domestic Violence Hotline: 1-800-799-7233",
			"RAINN (sexual assault): 1-800-656-4673",
		},
		AbuseWatch: []string{
			"National Domestic Violence Hotline: 1-800-799-7233",
			"RAINN (sexual assault): 1-800-656-4673",
		},
		CrisisCritical: []string{
			"988 Suicide & Crisis Lifeline (US): 988",
			"Crisis Text Line: Text HOME to 741741",
			"Emergency: 911 (US) or local emergency services",
		},
		CrisisAlert: []string{
			"988 Suicide & Crisis Lifeline (US): 988",
			"Crisis Text Line: Text HOME to 741741",
		},
	}
}
