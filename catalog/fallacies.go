package catalog

import "logicheck/models"

var fallacyScenarios = []models.FallacyScenario{
	// Ad Hominem
	{
		Scenario:      "A politician argues we shouldn't listen to a climate scientist's research because the scientist was once fined for littering.",
		Options:       []string{"Straw Man", "Ad Hominem", "Hasty Generalization", "Red Herring"},
		CorrectAnswer: "Ad Hominem",
		Explanation:   "This is an Ad Hominem fallacy because it attacks the scientist's character (littering fine) rather than addressing the validity of their climate research.",
	},
	{
		Scenario:      "A debate opponent dismisses a doctor's argument about healthcare reform by pointing out the doctor's expensive car, implying they're too wealthy to understand regular people's problems.",
		Options:       []string{"Ad Hominem", "Appeal to Authority", "False Dichotomy", "Bandwagon Appeal"},
		CorrectAnswer: "Ad Hominem",
		Explanation:   "This attacks the person's wealth rather than addressing the merits of their healthcare argument.",
	},
	// Straw Man
	{
		Scenario:      "Person A: 'We should have stricter regulations on industrial pollution.' Person B: 'So you want to shut down all factories and destroy the economy?'",
		Options:       []string{"Straw Man", "Slippery Slope", "False Dichotomy", "Red Herring"},
		CorrectAnswer: "Straw Man",
		Explanation:   "Person B misrepresents Person A's argument about stricter regulations as wanting to shut down all factories, making it easier to attack.",
	},
	{
		Scenario:      "A student proposes having healthier lunch options at school. The principal responds, 'I'm not going to ban all the food students enjoy and force everyone to eat salad.'",
		Options:       []string{"Straw Man", "Hasty Generalization", "Appeal to Authority", "Post Hoc"},
		CorrectAnswer: "Straw Man",
		Explanation:   "The principal distorts the proposal for 'healthier options' into an extreme position of 'banning all enjoyable food', which is easier to dismiss.",
	},
	// Hasty Generalization
	{
		Scenario:      "After meeting two rude customers from a particular city, a store clerk concludes that everyone from that city is rude.",
		Options:       []string{"Hasty Generalization", "Post Hoc", "Faulty Analogy", "Bandwagon Appeal"},
		CorrectAnswer: "Hasty Generalization",
		Explanation:   "Drawing a broad conclusion about all people from a city based on only two encounters is a hasty generalization.",
	},
	{
		Scenario:      "A student fails one math test and declares, 'I'm terrible at all math and will never understand it.'",
		Options:       []string{"Hasty Generalization", "Slippery Slope", "False Dichotomy", "Ad Hominem"},
		CorrectAnswer: "Hasty Generalization",
		Explanation:   "Concluding that one failed test means permanent inability in all of math is a hasty generalization from insufficient evidence.",
	},
	// Appeal to Authority
	{
		Scenario:      "A celebrity with no medical training promotes a health supplement, claiming it cured their illness, so it must work for everyone.",
		Options:       []string{"Appeal to Authority", "Bandwagon Appeal", "Post Hoc", "Faulty Analogy"},
		CorrectAnswer: "Appeal to Authority",
		Explanation:   "This relies on the celebrity's fame rather than medical expertise or scientific evidence, making it a false appeal to authority.",
	},
	{
		Scenario:      "An advertisement states, 'Nine out of ten dentists recommend this toothpaste,' without mentioning that those dentists were paid consultants for the company.",
		Options:       []string{"Appeal to Authority", "Bandwagon Appeal", "Red Herring", "Hasty Generalization"},
		CorrectAnswer: "Appeal to Authority",
		Explanation:   "While dentists are legitimate authorities, the conflict of interest undermines the validity of this appeal to authority.",
	},
	// False Dichotomy
	{
		Scenario:      "A politician declares, 'Either we build this wall, or our country will be overrun with criminals.'",
		Options:       []string{"False Dichotomy", "Slippery Slope", "Straw Man", "Red Herring"},
		CorrectAnswer: "False Dichotomy",
		Explanation:   "This presents only two extreme options while ignoring many other possibilities for border security and immigration policy.",
	},
	{
		Scenario:      "A parent tells their child, 'You either study medicine like I want, or you'll end up working a minimum wage job forever.'",
		Options:       []string{"False Dichotomy", "Ad Hominem", "Hasty Generalization", "Appeal to Authority"},
		CorrectAnswer: "False Dichotomy",
		Explanation:   "This falsely presents only two career outcomes, ignoring the many other professional paths available.",
	},
	// Slippery Slope
	{
		Scenario:      "If we allow students to redo one assignment, soon they'll expect to redo everything, then they'll want unlimited deadline extensions, and eventually academic standards will completely collapse.",
		Options:       []string{"Slippery Slope", "False Dichotomy", "Hasty Generalization", "Straw Man"},
		CorrectAnswer: "Slippery Slope",
		Explanation:   "This assumes that one reasonable accommodation will inevitably lead to a catastrophic chain of events without justification.",
	},
	{
		Scenario:      "A person argues, 'If we ban one type of plastic bag, next they'll ban all plastic, then all packaging, and soon we won't be able to buy anything.'",
		Options:       []string{"Slippery Slope", "Red Herring", "Post Hoc", "Faulty Analogy"},
		CorrectAnswer: "Slippery Slope",
		Explanation:   "This claims that one environmental regulation will inevitably lead to extreme outcomes without evidence for this chain reaction.",
	},
	// Red Herring
	{
		Scenario:      "During a debate about education funding, a candidate suddenly shifts to talking about their military service record instead of addressing the education question.",
		Options:       []string{"Red Herring", "Ad Hominem", "Straw Man", "Appeal to Authority"},
		CorrectAnswer: "Red Herring",
		Explanation:   "The candidate introduces an irrelevant topic (military service) to distract from the actual question about education funding.",
	},
	{
		Scenario:      "When asked about missing homework, a student responds, 'But what about all the times I did submit my homework on time?'",
		Options:       []string{"Red Herring", "Hasty Generalization", "False Dichotomy", "Bandwagon Appeal"},
		CorrectAnswer: "Red Herring",
		Explanation:   "The student deflects from the current missing homework by bringing up past submissions, which is irrelevant to the present issue.",
	},
	// Bandwagon Appeal
	{
		Scenario:      "An advertisement claims, 'Over 10 million people have bought this product. Shouldn't you?' without explaining why the product is actually good.",
		Options:       []string{"Bandwagon Appeal", "Appeal to Authority", "Hasty Generalization", "Post Hoc"},
		CorrectAnswer: "Bandwagon Appeal",
		Explanation:   "This argues that because many people bought it, you should too, relying on popularity rather than the product's merits.",
	},
	{
		Scenario:      "A teenager tells their parents, 'Everyone in my class has the latest phone. I need one too or I'll be left out.'",
		Options:       []string{"Bandwagon Appeal", "False Dichotomy", "Ad Hominem", "Slippery Slope"},
		CorrectAnswer: "Bandwagon Appeal",
		Explanation:   "This argues for getting the phone based on what everyone else has, rather than on actual need or value.",
	},
	// Faulty Analogy
	{
		Scenario:      "A manager argues, 'Employees are like machines. Just as we don't ask machines how they feel, we shouldn't care about employee satisfaction.'",
		Options:       []string{"Faulty Analogy", "Ad Hominem", "Straw Man", "False Dichotomy"},
		CorrectAnswer: "Faulty Analogy",
		Explanation:   "This comparison between employees and machines is faulty because humans have emotions, motivations, and needs that machines don't have.",
	},
	{
		Scenario:      "Someone argues, 'Banning books is like weeding a garden. Just as gardeners remove harmful weeds, we should remove harmful books.'",
		Options:       []string{"Faulty Analogy", "Slippery Slope", "Appeal to Authority", "Bandwagon Appeal"},
		CorrectAnswer: "Faulty Analogy",
		Explanation:   "This analogy is faulty because weeds objectively harm gardens, but labeling books as 'harmful' is subjective and involves complex free speech considerations that don't apply to gardening.",
	},
	// Post Hoc
	{
		Scenario:      "After a new mayor took office, the city's crime rate decreased. Therefore, the mayor's policies must have caused the decrease in crime.",
		Options:       []string{"Post Hoc", "Hasty Generalization", "False Dichotomy", "Faulty Analogy"},
		CorrectAnswer: "Post Hoc",
		Explanation:   "This assumes that because the crime decrease happened after the mayor took office, the mayor's policies caused it, ignoring other potential factors.",
	},
	{
		Scenario:      "I wore my lucky socks during the exam and got an A. These socks must bring good luck on tests.",
		Options:       []string{"Post Hoc", "Hasty Generalization", "Appeal to Authority", "Red Herring"},
		CorrectAnswer: "Post Hoc",
		Explanation:   "This assumes that wearing the socks caused the good grade simply because it happened first, ignoring the actual cause (studying, preparation, etc.).",
	},
}
