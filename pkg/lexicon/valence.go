package lexicon

// valence maps lowercase tokens to signed sentiment scores, loosely following
// the VADER weighting scheme (roughly -4..+4). Unknown tokens score 0.
var valence = map[string]float64{
	// positive
	"amazing":      3.1,
	"awesome":      3.1,
	"beautiful":    2.7,
	"best":         3.2,
	"better":       1.9,
	"brilliant":    2.8,
	"calm":         1.3,
	"celebrate":    2.7,
	"comfortable":  1.7,
	"confident":    2.2,
	"congrats":     2.4,
	"delighted":    2.9,
	"easy":         1.2,
	"encouraging":  2.2,
	"enjoy":        2.2,
	"enjoyed":      2.2,
	"excellent":    3.2,
	"excited":      2.6,
	"exciting":     2.6,
	"fantastic":    3.1,
	"fun":          2.3,
	"glad":         2.0,
	"good":         1.9,
	"grateful":     2.4,
	"great":        3.1,
	"happy":        2.7,
	"helpful":      1.9,
	"hope":         1.9,
	"hopeful":      2.3,
	"impressed":    2.2,
	"impressive":   2.4,
	"incredible":   2.9,
	"interesting":  1.7,
	"joy":          2.8,
	"kind":         1.8,
	"laugh":        2.2,
	"like":         1.5,
	"love":         3.2,
	"loved":        2.9,
	"lucky":        1.8,
	"motivated":    2.1,
	"nice":         1.8,
	"optimistic":   2.1,
	"passed":       1.9,
	"peaceful":     2.0,
	"perfect":      2.7,
	"pleasant":     2.3,
	"pleased":      2.1,
	"proud":        2.2,
	"recommend":    1.6,
	"relaxed":      1.9,
	"relief":       1.9,
	"relieved":     2.1,
	"rewarding":    2.3,
	"smart":        1.7,
	"smile":        2.0,
	"strong":       1.3,
	"succeed":      2.2,
	"success":      2.7,
	"successful":   2.6,
	"supportive":   2.0,
	"thankful":     2.4,
	"thanks":       1.9,
	"thrilled":     3.0,
	"win":          2.8,
	"winning":      2.4,
	"wonderful":    2.7,
	"won":          2.7,
	"worth":        0.9,
	"worthwhile":   1.9,
	"yay":          2.4,

	// negative
	"abandoned":    -2.0,
	"afraid":       -2.2,
	"alone":        -1.0,
	"angry":        -2.3,
	"anxiety":      -2.0,
	"anxious":      -2.0,
	"awful":        -2.9,
	"bad":          -2.5,
	"breakdown":    -2.6,
	"broke":        -1.3,
	"broken":       -1.9,
	"bullied":      -2.6,
	"burned":       -1.5,
	"burnout":      -2.4,
	"crisis":       -2.3,
	"cry":          -2.0,
	"crying":       -2.2,
	"dead":         -2.9,
	"depressed":    -2.7,
	"depressing":   -2.4,
	"depression":   -2.5,
	"desperate":    -2.4,
	"devastated":   -3.0,
	"die":          -2.9,
	"disappointed": -2.1,
	"disaster":     -2.7,
	"dread":        -2.3,
	"dropped":      -1.1,
	"dying":        -2.7,
	"embarrassed":  -1.8,
	"empty":        -1.4,
	"exhausted":    -2.0,
	"expelled":     -2.4,
	"fail":         -2.3,
	"failed":       -2.3,
	"failing":      -2.3,
	"failure":      -2.5,
	"fear":         -2.2,
	"frightened":   -2.3,
	"frustrated":   -2.1,
	"frustrating":  -2.1,
	"give":         0.0,
	"gloomy":       -1.9,
	"harassed":     -2.6,
	"harassment":   -2.6,
	"hate":         -2.9,
	"hated":        -2.7,
	"helpless":     -2.3,
	"hopeless":     -2.7,
	"horrible":     -2.8,
	"hurt":         -2.1,
	"hurting":      -2.2,
	"insomnia":     -1.8,
	"isolated":     -1.8,
	"kill":         -3.0,
	"lonely":       -2.1,
	"lose":         -1.8,
	"losing":       -1.8,
	"lost":         -1.5,
	"mad":          -2.0,
	"miserable":    -2.7,
	"miss":         -1.0,
	"nervous":      -1.6,
	"nightmare":    -2.4,
	"overwhelmed":  -2.2,
	"overwhelming": -1.9,
	"pain":         -2.3,
	"painful":      -2.3,
	"panic":        -2.4,
	"pathetic":     -2.4,
	"pointless":    -2.0,
	"poor":         -1.6,
	"pressure":     -1.2,
	"quit":         -1.4,
	"regret":       -1.9,
	"rejected":     -2.1,
	"sad":          -2.1,
	"scared":       -2.2,
	"scary":        -2.1,
	"sick":         -1.7,
	"stalked":      -2.6,
	"stress":       -1.9,
	"stressed":     -2.1,
	"stressful":    -2.0,
	"struggle":     -1.8,
	"struggling":   -1.9,
	"stuck":        -1.3,
	"stupid":       -2.1,
	"suffer":       -2.3,
	"suffering":    -2.4,
	"suicidal":     -3.3,
	"suicide":      -3.3,
	"terrible":     -2.8,
	"terrified":    -2.7,
	"threatened":   -2.5,
	"tired":        -1.3,
	"trapped":      -2.0,
	"ugly":         -2.1,
	"unbearable":   -2.6,
	"unfair":       -1.9,
	"unhappy":      -2.2,
	"upset":        -2.0,
	"useless":      -2.2,
	"waste":        -1.8,
	"wasted":       -1.8,
	"worried":      -1.9,
	"worry":        -1.9,
	"worse":        -2.1,
	"worst":        -3.1,
	"worthless":    -2.7,
	"wrong":        -1.6,
}

// negators flip the sign of the content tokens that follow them.
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"nobody":  true,
	"nothing": true,
	"cannot":  true,
}

// intensifiers boost the magnitude of the immediately following content token.
var intensifiers = map[string]bool{
	"very":       true,
	"extremely":  true,
	"really":     true,
	"so":         true,
	"totally":    true,
	"absolutely": true,
	"completely": true,
	"incredibly": true,
}
