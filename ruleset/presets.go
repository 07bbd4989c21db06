package ruleset

// Built-in calendar definitions. These cover the calendars the service
// ships with out of the box; a definition store or locator URL takes
// precedence over a preset with the same code.
//
// Keys are lowercase ISO 3166-1 alpha-2 codes.
var presets = map[string]string{
	"us": `{
		"code": "us",
		"description": "United States",
		"holidays": [
			{"type": "fixed", "key": "NEW_YEAR", "month": 1, "day": 1},
			{"type": "fixed_weekday", "key": "MARTIN_LUTHER_KING", "month": 1, "weekday": "monday", "which": "third", "valid_from": 1986},
			{"type": "fixed_weekday", "key": "WASHINGTONS_BIRTHDAY", "month": 2, "weekday": "monday", "which": "third"},
			{"type": "fixed_weekday", "key": "MEMORIAL", "month": 5, "weekday": "monday", "which": "last"},
			{"type": "fixed", "key": "INDEPENDENCE", "month": 7, "day": 4},
			{"type": "fixed_weekday", "key": "LABOUR_DAY", "month": 9, "weekday": "monday", "which": "first"},
			{"type": "fixed", "key": "VETERANS", "month": 11, "day": 11},
			{"type": "fixed_weekday", "key": "THANKSGIVING", "month": 11, "weekday": "thursday", "which": "fourth"},
			{"type": "fixed", "key": "CHRISTMAS", "month": 12, "day": 25}
		],
		"sub": {
			"ny": {
				"description": "New York",
				"holidays": [
					{"type": "fixed_weekday", "key": "ELECTION", "month": 11, "weekday": "tuesday", "which": "first", "unofficial": true}
				],
				"sub": {
					"nyc": {
						"description": "New York City",
						"holidays": [
							{"type": "fixed", "key": "LINCOLNS_BIRTHDAY", "month": 2, "day": 12, "unofficial": true}
						]
					}
				}
			},
			"ca": {
				"description": "California",
				"holidays": [
					{"type": "fixed", "key": "CESAR_CHAVEZ", "month": 3, "day": 31, "unofficial": true}
				]
			}
		}
	}`,

	"de": `{
		"code": "de",
		"description": "Germany",
		"holidays": [
			{"type": "fixed", "key": "NEW_YEAR", "month": 1, "day": 1},
			{"type": "relative_to_easter", "key": "GOOD_FRIDAY", "days": -2},
			{"type": "relative_to_easter", "key": "EASTER_MONDAY", "days": 1},
			{"type": "fixed", "key": "LABOUR_DAY", "month": 5, "day": 1},
			{"type": "relative_to_easter", "key": "ASCENSION_DAY", "days": 39},
			{"type": "relative_to_easter", "key": "WHIT_MONDAY", "days": 50},
			{"type": "fixed", "key": "UNIFICATION", "month": 10, "day": 3, "valid_from": 1990},
			{"type": "fixed", "key": "CHRISTMAS", "month": 12, "day": 25},
			{"type": "fixed", "key": "BOXING_DAY", "month": 12, "day": 26}
		],
		"sub": {
			"bw": {
				"description": "Baden-Wuerttemberg",
				"holidays": [
					{"type": "fixed", "key": "EPIPHANY", "month": 1, "day": 6},
					{"type": "relative_to_easter", "key": "CORPUS_CHRISTI", "days": 60},
					{"type": "fixed", "key": "ALL_SAINTS", "month": 11, "day": 1}
				]
			},
			"by": {
				"description": "Bavaria",
				"holidays": [
					{"type": "fixed", "key": "EPIPHANY", "month": 1, "day": 6},
					{"type": "relative_to_easter", "key": "CORPUS_CHRISTI", "days": 60},
					{"type": "fixed", "key": "ASSUMPTION_DAY", "month": 8, "day": 15},
					{"type": "fixed", "key": "ALL_SAINTS", "month": 11, "day": 1}
				]
			}
		}
	}`,

	"at": `{
		"code": "at",
		"description": "Austria",
		"holidays": [
			{"type": "fixed", "key": "NEW_YEAR", "month": 1, "day": 1},
			{"type": "fixed", "key": "EPIPHANY", "month": 1, "day": 6},
			{"type": "relative_to_easter", "key": "EASTER_MONDAY", "days": 1},
			{"type": "fixed", "key": "LABOUR_DAY", "month": 5, "day": 1},
			{"type": "relative_to_easter", "key": "ASCENSION_DAY", "days": 39},
			{"type": "relative_to_easter", "key": "WHIT_MONDAY", "days": 50},
			{"type": "relative_to_easter", "key": "CORPUS_CHRISTI", "days": 60},
			{"type": "fixed", "key": "ASSUMPTION_DAY", "month": 8, "day": 15},
			{"type": "fixed", "key": "NATIONAL_DAY", "month": 10, "day": 26, "valid_from": 1965},
			{"type": "fixed", "key": "ALL_SAINTS", "month": 11, "day": 1},
			{"type": "fixed", "key": "IMMACULATE_CONCEPTION", "month": 12, "day": 8},
			{"type": "fixed", "key": "CHRISTMAS", "month": 12, "day": 25},
			{"type": "fixed", "key": "STEPHENS_DAY", "month": 12, "day": 26}
		]
	}`,

	"fr": `{
		"code": "fr",
		"description": "France",
		"holidays": [
			{"type": "fixed", "key": "NEW_YEAR", "month": 1, "day": 1},
			{"type": "relative_to_easter", "key": "EASTER_MONDAY", "days": 1},
			{"type": "fixed", "key": "LABOUR_DAY", "month": 5, "day": 1},
			{"type": "fixed", "key": "VICTORY_DAY", "month": 5, "day": 8, "valid_from": 1982},
			{"type": "relative_to_easter", "key": "ASCENSION_DAY", "days": 39},
			{"type": "relative_to_easter", "key": "WHIT_MONDAY", "days": 50},
			{"type": "fixed", "key": "NATIONAL_DAY", "month": 7, "day": 14},
			{"type": "fixed", "key": "ASSUMPTION_DAY", "month": 8, "day": 15},
			{"type": "fixed", "key": "ALL_SAINTS", "month": 11, "day": 1},
			{"type": "fixed", "key": "ARMISTICE", "month": 11, "day": 11},
			{"type": "fixed", "key": "CHRISTMAS", "month": 12, "day": 25}
		]
	}`,

	"ma": `{
		"code": "ma",
		"description": "Morocco",
		"holidays": [
			{"type": "fixed", "key": "NEW_YEAR", "month": 1, "day": 1},
			{"type": "fixed", "key": "INDEPENDENCE_MANIFESTO", "month": 1, "day": 11},
			{"type": "fixed", "key": "LABOUR_DAY", "month": 5, "day": 1},
			{"type": "fixed", "key": "THRONE_DAY", "month": 7, "day": 30},
			{"type": "fixed", "key": "GREEN_MARCH", "month": 11, "day": 6},
			{"type": "fixed", "key": "INDEPENDENCE_DAY", "month": 11, "day": 18},
			{"type": "islamic", "key": "ISLAMIC_NEW_YEAR", "islamic_month": 1, "islamic_day": 1},
			{"type": "islamic", "key": "MAULID", "islamic_month": 3, "islamic_day": 12},
			{"type": "islamic", "key": "ID_AL_FITR", "islamic_month": 10, "islamic_day": 1},
			{"type": "islamic", "key": "ID_UL_ADHA", "islamic_month": 12, "islamic_day": 10}
		]
	}`,
}
