package story

// Authored content for the built-in campaign. Used when no story asset
// path is configured, and to seed an empty asset directory so the
// content can be edited on disk.

// DefaultSpecs returns the built-in campaign keyed by asset identifier.
func DefaultSpecs() map[string]*NodeSpec {
	return map[string]*NodeSpec{
		"start": {
			ID:       0,
			Scenario: "Winter has come early to the valley. The pack that raised you is gone, and your belly has been empty for two days.",
			ChoiceA:  "Follow the elk herd down into the lowlands",
			ChoiceB:  "Claim the abandoned den on the ridge",
			Left:     "lowlands",
			Right:    "ridge",
		},
		"lowlands": {
			ID:       1,
			Scenario: "The elk have drifted close to a ranch. Woodsmoke hangs in the air, and dogs bark somewhere beyond the fence line.",
			ChoiceA:  "Hunt the stragglers at the edge of the herd",
			ChoiceB:  "Scavenge the treeline instead",
			Left:     "hunt-stragglers",
			Right:    "treeline",
		},
		"ridge": {
			ID:       2,
			Scenario: "The den on the ridge is dry and deep, but the air inside carries the sour reek of bear.",
			ChoiceA:  "Drive the intruder out",
			ChoiceB:  "Search the ridge for another shelter",
			Left:     "bear",
			Right:    "shelter",
		},
		"hunt-stragglers": {
			ID:       3,
			Scenario: "You bring down a weak cow elk at dusk, but the ranch dogs catch your scent on the wind.",
			ChoiceA:  "Stand your ground over the kill",
			ChoiceB:  "Drag the kill into the pines",
			Left:     "dogs-fight",
			Right:    "pines",
		},
		"treeline": {
			ID:       4,
			Scenario: "Among the frozen deadfall you find a lean grey scout from your old pack, nosing the same scraps you came for.",
			ChoiceA:  "Hunt together, as you once did",
			ChoiceB:  "Warn her off and go on alone",
			Left:     "reunion",
			Right:    "alone",
		},
		"bear": {
			ID:       5,
			Scenario: "A young black bear turns in the dark of the den, heavy and slow with the coming sleep.",
			ChoiceA:  "Go straight for its throat",
			ChoiceB:  "Feint and harry it toward the entrance",
			Left:     "bear-mauled",
			Right:    "bear-driven",
		},
		"shelter": {
			ID:       6,
			Scenario: "Below the ridge you find a windfall hollow, cramped but hidden, with a rabbit run not thirty strides away.",
			ChoiceA:  "Settle in and wait out the storm",
			ChoiceB:  "Push on through the night for something better",
			Left:     "hollow-home",
			Right:    "frozen",
		},
		"dogs-fight": {
			ID:         7,
			Scenario:   "Three dogs come through the fence with the rancher's lamp swinging behind them.",
			Ending:     true,
			EndingText: "You hold the kill until the rifle cracks. The valley keeps your bones, and the elk keep their winter.",
			Outcome:    OutcomeDefeat,
		},
		"pines": {
			ID:         8,
			Scenario:   "The pines swallow you and the kill both.",
			Ending:     true,
			EndingText: "Fed and hidden, you winter in the deep timber. By spring the lowland herds know your voice, and so do the wolves who answer it.",
			Outcome:    OutcomeVictory,
		},
		"reunion": {
			ID:         9,
			Scenario:   "She falls in at your shoulder without a sound.",
			Ending:     true,
			EndingText: "Two wolves eat where one starves. By the thaw there are five of you, and the valley is a pack's valley again.",
			Outcome:    OutcomeVictory,
		},
		"alone": {
			ID:         10,
			Scenario:   "She melts into the deadfall and does not look back.",
			Ending:     true,
			EndingText: "Alone, every lean week cuts deeper. The last snow covers a proud and solitary hunter.",
			Outcome:    OutcomeDefeat,
		},
		"bear-mauled": {
			ID:         11,
			Scenario:   "The bear is slower than you, but the den leaves no room to be fast.",
			Ending:     true,
			EndingText: "One blow from a forepaw ends the argument. The den keeps its sour smell.",
			Outcome:    OutcomeDefeat,
		},
		"bear-driven": {
			ID:         12,
			Scenario:   "You snap at its heels until the bear lumbers out into the snow, grumbling.",
			Ending:     true,
			EndingText: "The ridge den is yours. Warm, fed on cached kills, you howl ownership over the valley until others come to join the song.",
			Outcome:    OutcomeVictory,
		},
		"hollow-home": {
			ID:         13,
			Scenario:   "The storm howls for three days. The hollow holds.",
			Ending:     true,
			EndingText: "Rabbits keep you through the dark months. It is a small life, but it is yours, and in spring it grows.",
			Outcome:    OutcomeVictory,
		},
		"frozen": {
			ID:         14,
			Scenario:   "The night wind comes down off the peaks like a blade.",
			Ending:     true,
			EndingText: "There was no better shelter. The cold takes its toll before dawn.",
			Outcome:    OutcomeDefeat,
		},
	}
}

// DefaultTree builds the built-in campaign.
func DefaultTree() *Tree {
	t, err := BuildTree(specStore(DefaultSpecs()))
	if err != nil {
		// The built-in content is fixed at compile time; failing to link
		// it is a programming error.
		panic(err)
	}
	return t
}

// specStore is an in-memory Storer over authored specs.
type specStore map[string]*NodeSpec

func (s specStore) Save(id string, spec *NodeSpec) error {
	s[id] = spec
	return nil
}

func (s specStore) Get(id string) *NodeSpec {
	return s[id]
}

func (s specStore) GetAll() map[string]*NodeSpec {
	out := make(map[string]*NodeSpec, len(s))
	for id, spec := range s {
		out[id] = spec
	}
	return out
}
