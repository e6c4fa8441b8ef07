package catalog

import "logicheck/models"

// BiasInstructions is shown alongside every bias comparison challenge.
const BiasInstructions = "Read both articles carefully. Highlight words and passages that show bias and tag each one: " +
	"\"loaded\" for words with strong connotations, \"emotional\" for appeals to feeling over logic, and " +
	"\"framing\" for selective presentation of facts. Look for bias in both articles, not just the one you disagree with."

var biasTopics = []models.BiasTopic{
	{
		Topic: "Climate Change Policy",
		ArticleA: models.Article{
			Source: "The Green Horizon",
			Bias:   "Progressive",
			Title:  "Lawmakers Gamble Our Children's Future With Reckless Emissions Rollback",
			Content: "In a stunning betrayal of future generations, lawmakers voted yesterday to gut the emissions standards " +
				"that scientists say stand between us and climate catastrophe. Families already reeling from devastating " +
				"wildfires and floods watched in horror as industry lobbyists celebrated their latest victory. " +
				"Experts warn the rollback could add millions of tons of pollution each year. Meanwhile, the same officials " +
				"who pocketed fossil fuel donations insist the economy comes first, as if there will be an economy " +
				"left to protect on a burning planet.",
		},
		ArticleB: models.Article{
			Source: "The Liberty Ledger",
			Bias:   "Conservative",
			Title:  "Common Sense Prevails as Congress Reins In Job-Killing Climate Mandates",
			Content: "Working families finally got relief yesterday as Congress rolled back radical emissions mandates that " +
				"threatened to shutter factories across the heartland. For years, alarmist activists have pushed " +
				"crushing regulations that drive up energy bills while doing little for the planet. Plant managers " +
				"say the change will save thousands of jobs. Critics predicted doom, but the real disaster would have " +
				"been letting unelected bureaucrats bankrupt hardworking Americans to chase a political fantasy.",
		},
	},
	{
		Topic: "Minimum Wage Increase",
		ArticleA: models.Article{
			Source: "Workers' Voice Daily",
			Bias:   "Labor-Aligned",
			Title:  "Finally, a Living Wage: City Lifts Millions Out of Poverty Wages",
			Content: "After years of struggle, exhausted workers who clean our offices and cook our food won a long-overdue " +
				"raise this week. The greedy corporations that fought the increase posted record profits last year while " +
				"their employees skipped meals to pay rent. Economists at the university found that higher pay reduces " +
				"turnover. No parent working full time should have to choose between medicine and groceries, and today " +
				"the city finally said enough.",
		},
		ArticleB: models.Article{
			Source: "Main Street Business Journal",
			Bias:   "Business-Aligned",
			Title:  "Wage Hike Pushes Struggling Small Businesses to the Brink",
			Content: "Local shop owners are bracing for the worst after the city council forced through a drastic wage mandate. " +
				"Family diners that have served neighborhoods for generations now face a grim choice: lay off loyal staff " +
				"or close their doors forever. One owner said she was heartbroken. A chamber of commerce survey found that " +
				"a third of members plan to cut hours. Politicians grabbed headlines, but it is teenagers looking for their " +
				"first job who will pay the price.",
		},
	},
	{
		Topic: "Remote Work",
		ArticleA: models.Article{
			Source: "Future of Work Weekly",
			Bias:   "Pro-Remote",
			Title:  "Outdated Bosses Drag Employees Back to Soul-Crushing Commutes",
			Content: "Out-of-touch executives are ordering staff back to cubicles despite mountains of evidence that remote " +
				"workers are happier and just as productive. Parents who finally saw their kids at dinner now face two-hour " +
				"commutes again. A recent survey found most employees would consider quitting. Managers who cannot trust " +
				"their teams are clinging to control, not results, and talented workers are already walking out the door.",
		},
		ArticleB: models.Article{
			Source: "Corporate Leadership Review",
			Bias:   "Pro-Office",
			Title:  "Companies Restore Collaboration as Remote Work Experiment Falters",
			Content: "Forward-thinking companies are reviving the in-person culture that built great teams, after a chaotic " +
				"remote experiment left new hires isolated and projects stalled. Several executives described a troubling " +
				"decline in mentorship. One study found junior employees received less feedback at home. Workers who embrace " +
				"the office are rediscovering the energy of real collaboration, while holdouts risk being left behind.",
		},
	},
	{
		Topic: "Social Media Regulation",
		ArticleA: models.Article{
			Source: "Digital Rights Watch",
			Bias:   "Civil-Libertarian",
			Title:  "New Censorship Law Hands Government a Muzzle for Online Speech",
			Content: "Under the guise of protecting children, lawmakers passed a sweeping bill that lets regulators silence " +
				"online speech they dislike. Free expression advocates are alarmed. The law's vague language could punish " +
				"platforms for hosting lawful posts, and history shows such powers are always abused. Ordinary users who " +
				"speak out against the powerful will be the first to disappear from their feeds.",
		},
		ArticleB: models.Article{
			Source: "Family Safety Network",
			Bias:   "Child-Safety Advocate",
			Title:  "Landmark Law Finally Holds Tech Giants Accountable for Harming Kids",
			Content: "Grieving parents wept in the gallery as lawmakers passed a landmark bill to stop tech giants from " +
				"profiting off children's pain. For too long, addictive apps have preyed on vulnerable teens while executives " +
				"looked away. Pediatricians have linked heavy use to anxiety. Only Big Tech's army of lobbyists opposed the " +
				"measure, proving once again that they care more about clicks than kids.",
		},
	},
}
