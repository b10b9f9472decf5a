package rubrics

// interviewRubrics maps each interview category to its scoring rubric. The
// table is initialized once at startup and read-only afterwards.
var interviewRubrics = map[string]CategoryRubric{
	"Introduction": {
		Category: "Introduction",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.4,
				Description: "How well the answer addresses the question asked",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly answers question with clear, relevant information"},
					{"6-8", "Answers question but includes some tangential information"},
					{"3-5", "Partially addresses question, significant off-topic content"},
					{"0-2", "Does not answer question, completely off-topic, or says 'I don't know'"},
				},
			},
			{
				Name:        "Clarity",
				Weight:      0.3,
				Description: "How clear and articulate the response is",
				ScoringGuide: []GuideBand{
					{"9-10", "Very clear, well-structured, easy to follow"},
					{"6-8", "Generally clear but could be better organized"},
					{"3-5", "Somewhat unclear, disorganized thoughts"},
					{"0-2", "Confusing, incoherent, or no meaningful response"},
				},
			},
			{
				Name:        "Depth",
				Weight:      0.3,
				Description: "Level of detail and thoughtfulness in the answer",
				ScoringGuide: []GuideBand{
					{"9-10", "Detailed, thoughtful response with specific examples"},
					{"6-8", "Adequate detail but could elaborate more"},
					{"3-5", "Surface-level response, lacks depth"},
					{"0-2", "Minimal effort, no real substance"},
				},
			},
		},
	},

	"Clinical Judgement": {
		Category: "Clinical Judgement",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.3,
				Description: "How well the answer addresses the clinical scenario",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly addresses scenario with appropriate clinical reasoning"},
					{"6-8", "Addresses scenario but misses some key considerations"},
					{"3-5", "Partially relevant, shows gaps in clinical thinking"},
					{"0-2", "Not relevant, wrong approach, or admits not knowing"},
				},
			},
			{
				Name:        "Clinical Accuracy",
				Weight:      0.4,
				Description: "Correctness of clinical knowledge and reasoning",
				ScoringGuide: []GuideBand{
					{"9-10", "Clinically accurate, demonstrates sound judgement"},
					{"6-8", "Mostly accurate with minor gaps or oversights"},
					{"3-5", "Contains significant clinical errors or misconceptions"},
					{"0-2", "Clinically incorrect or dangerous approach"},
				},
			},
			{
				Name:        "Decision-Making Process",
				Weight:      0.3,
				Description: "Quality of the reasoning and decision-making approach",
				ScoringGuide: []GuideBand{
					{"9-10", "Systematic, evidence-based approach with clear rationale"},
					{"6-8", "Reasonable approach but could be more systematic"},
					{"3-5", "Unclear reasoning, jumps to conclusions"},
					{"0-2", "No clear reasoning process"},
				},
			},
		},
	},

	"Technical Knowledge - Clinical Procedures": {
		Category: "Technical Knowledge - Clinical Procedures",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.3,
				Description: "How well the answer addresses the technical question",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly addresses procedure with accurate technical details"},
					{"6-8", "Addresses question but misses some technical aspects"},
					{"3-5", "Partially relevant, lacks key technical information"},
					{"0-2", "Not relevant or admits not knowing the procedure"},
				},
			},
			{
				Name:        "Technical Accuracy",
				Weight:      0.5,
				Description: "Correctness of technical/procedural knowledge",
				ScoringGuide: []GuideBand{
					{"9-10", "Technically accurate, demonstrates expertise"},
					{"6-8", "Generally accurate with minor technical errors"},
					{"3-5", "Significant technical errors or outdated information"},
					{"0-2", "Incorrect technique or dangerous practice described"},
				},
			},
			{
				Name:        "Completeness",
				Weight:      0.2,
				Description: "Coverage of important procedural steps or considerations",
				ScoringGuide: []GuideBand{
					{"9-10", "Comprehensive coverage of procedure and key considerations"},
					{"6-8", "Covers main points but misses some details"},
					{"3-5", "Incomplete, misses critical steps"},
					{"0-2", "Minimal information provided"},
				},
			},
		},
	},

	"Ethics, Consent & Communication": {
		Category: "Ethics, Consent & Communication",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.3,
				Description: "How well the answer addresses the ethical/communication scenario",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly addresses ethical considerations and communication needs"},
					{"6-8", "Addresses main points but could be more thorough"},
					{"3-5", "Partially addresses scenario, misses key ethical aspects"},
					{"0-2", "Not relevant or admits uncertainty about ethics"},
				},
			},
			{
				Name:        "Ethical Reasoning",
				Weight:      0.4,
				Description: "Quality of ethical analysis and professional standards",
				ScoringGuide: []GuideBand{
					{"9-10", "Strong ethical reasoning, considers all stakeholders"},
					{"6-8", "Sound reasoning but could consider more perspectives"},
					{"3-5", "Weak ethical reasoning, misses important considerations"},
					{"0-2", "Poor ethical judgement or inappropriate response"},
				},
			},
			{
				Name:        "Communication Approach",
				Weight:      0.3,
				Description: "Quality of proposed communication strategy",
				ScoringGuide: []GuideBand{
					{"9-10", "Excellent communication approach, empathetic and clear"},
					{"6-8", "Good approach but could be more refined"},
					{"3-5", "Basic approach, lacks empathy or clarity"},
					{"0-2", "Poor communication strategy or avoids communication"},
				},
			},
		},
	},

	"Productivity & Efficiency": {
		Category: "Productivity & Efficiency",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.3,
				Description: "How well the answer addresses productivity/efficiency question",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly addresses efficiency with practical strategies"},
					{"6-8", "Addresses question but could be more specific"},
					{"3-5", "Vague response, lacks concrete strategies"},
					{"0-2", "Not relevant or admits no experience with efficiency"},
				},
			},
			{
				Name:        "Practicality",
				Weight:      0.4,
				Description: "How realistic and implementable the approaches are",
				ScoringGuide: []GuideBand{
					{"9-10", "Highly practical, realistic strategies that work"},
					{"6-8", "Generally practical but may have implementation challenges"},
					{"3-5", "Somewhat unrealistic or overly theoretical"},
					{"0-2", "Impractical or would not work in real settings"},
				},
			},
			{
				Name:        "Balance",
				Weight:      0.3,
				Description: "Considers quality, safety, and efficiency together",
				ScoringGuide: []GuideBand{
					{"9-10", "Excellent balance between speed and quality/safety"},
					{"6-8", "Considers balance but could be more nuanced"},
					{"3-5", "Overemphasizes efficiency at expense of quality"},
					{"0-2", "No consideration of quality or safety"},
				},
			},
		},
	},

	"Technical Knowledge - Advanced Applications": {
		Category: "Technical Knowledge - Advanced Applications",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.3,
				Description: "How well answer addresses the advanced technical topic",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly addresses technology/technique with insight"},
					{"6-8", "Addresses topic but could show more depth"},
					{"3-5", "Basic understanding, lacks advanced perspective"},
					{"0-2", "Not relevant or admits unfamiliarity"},
				},
			},
			{
				Name:        "Technical Knowledge",
				Weight:      0.4,
				Description: "Depth of knowledge about advanced applications",
				ScoringGuide: []GuideBand{
					{"9-10", "Demonstrates advanced knowledge and current awareness"},
					{"6-8", "Good knowledge but may have some gaps"},
					{"3-5", "Basic knowledge, outdated or incomplete"},
					{"0-2", "Minimal knowledge or significant misconceptions"},
				},
			},
			{
				Name:        "Innovation Mindset",
				Weight:      0.3,
				Description: "Interest in learning and adopting new technologies",
				ScoringGuide: []GuideBand{
					{"9-10", "Shows enthusiasm and critical thinking about innovation"},
					{"6-8", "Open to new technologies but somewhat cautious"},
					{"3-5", "Resistant to change or shows little interest"},
					{"0-2", "Dismissive of new technologies or change"},
				},
			},
		},
	},

	"Mentorship & Independence": {
		Category: "Mentorship & Independence",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.3,
				Description: "How well answer addresses learning/teaching question",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly addresses learning or teaching with specific examples"},
					{"6-8", "Addresses question but could provide better examples"},
					{"3-5", "Vague response about learning or teaching"},
					{"0-2", "Not relevant or admits no relevant experience"},
				},
			},
			{
				Name:        "Self-Direction",
				Weight:      0.35,
				Description: "Shows ability to learn and work independently",
				ScoringGuide: []GuideBand{
					{"9-10", "Strong self-directed learning approach with examples"},
					{"6-8", "Can work independently but may need some guidance"},
					{"3-5", "Relies heavily on others, limited independence"},
					{"0-2", "Overly dependent or resistant to learning"},
				},
			},
			{
				Name:        "Teaching Ability",
				Weight:      0.35,
				Description: "Ability to mentor, teach, or explain to others",
				ScoringGuide: []GuideBand{
					{"9-10", "Excellent teaching approach, patient and clear"},
					{"6-8", "Can teach but approach could be refined"},
					{"3-5", "Limited teaching skills or patience"},
					{"0-2", "Poor teaching ability or unwilling to help others"},
				},
			},
		},
	},

	"Technical Knowledge - Diagnosis & Treatment Planning": {
		Category: "Technical Knowledge - Diagnosis & Treatment Planning",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.3,
				Description: "How well answer addresses diagnostic/planning question",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly addresses diagnosis or planning with clear reasoning"},
					{"6-8", "Addresses question but could be more systematic"},
					{"3-5", "Partially relevant, lacks clear diagnostic approach"},
					{"0-2", "Not relevant or admits inability to diagnose/plan"},
				},
			},
			{
				Name:        "Diagnostic Accuracy",
				Weight:      0.4,
				Description: "Correctness of diagnostic reasoning and planning",
				ScoringGuide: []GuideBand{
					{"9-10", "Accurate diagnosis, comprehensive treatment plan"},
					{"6-8", "Generally accurate but may miss some considerations"},
					{"3-5", "Diagnostic errors or incomplete treatment planning"},
					{"0-2", "Significant errors that could harm patient care"},
				},
			},
			{
				Name:        "Systematic Approach",
				Weight:      0.3,
				Description: "Uses structured, systematic diagnostic/planning process",
				ScoringGuide: []GuideBand{
					{"9-10", "Highly systematic, considers all relevant factors"},
					{"6-8", "Generally systematic but could be more thorough"},
					{"3-5", "Unsystematic, jumps to conclusions"},
					{"0-2", "No clear systematic approach"},
				},
			},
		},
	},

	"Fit & Professional Maturity": {
		Category: "Fit & Professional Maturity",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.3,
				Description: "How well answer addresses the behavioral/fit question",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly addresses question with relevant personal examples"},
					{"6-8", "Addresses question but examples could be stronger"},
					{"3-5", "Vague response, weak or irrelevant examples"},
					{"0-2", "Not relevant or avoids answering"},
				},
			},
			{
				Name:        "Self-Awareness",
				Weight:      0.35,
				Description: "Shows insight into own strengths, weaknesses, growth",
				ScoringGuide: []GuideBand{
					{"9-10", "High self-awareness, honest reflection on growth"},
					{"6-8", "Good self-awareness but could be more insightful"},
					{"3-5", "Limited self-awareness or overly defensive"},
					{"0-2", "No self-awareness or refuses to acknowledge weaknesses"},
				},
			},
			{
				Name:        "Professional Maturity",
				Weight:      0.35,
				Description: "Demonstrates mature, professional approach to challenges",
				ScoringGuide: []GuideBand{
					{"9-10", "Highly mature, handles challenges professionally"},
					{"6-8", "Generally mature but may show some immaturity"},
					{"3-5", "Immature reactions or poor professional judgement"},
					{"0-2", "Significantly immature or unprofessional"},
				},
			},
		},
	},

	"Insight & Authenticity": {
		Category: "Insight & Authenticity",
		Criteria: []ScoringCriterion{
			{
				Name:        "Relevance",
				Weight:      0.3,
				Description: "How well answer addresses the reflective question",
				ScoringGuide: []GuideBand{
					{"9-10", "Directly addresses question with honest reflection"},
					{"6-8", "Addresses question but could be more reflective"},
					{"3-5", "Surface-level response, avoids real reflection"},
					{"0-2", "Not relevant or refuses to engage authentically"},
				},
			},
			{
				Name:        "Authenticity",
				Weight:      0.4,
				Description: "Shows genuine, honest self-reflection",
				ScoringGuide: []GuideBand{
					{"9-10", "Highly authentic, honest about strengths and weaknesses"},
					{"6-8", "Generally authentic but somewhat guarded"},
					{"3-5", "Overly rehearsed or gives 'correct' answers"},
					{"0-2", "Inauthentic, dishonest, or completely guarded"},
				},
			},
			{
				Name:        "Growth Orientation",
				Weight:      0.3,
				Description: "Shows willingness to learn and grow from experiences",
				ScoringGuide: []GuideBand{
					{"9-10", "Strong growth mindset, learns from all experiences"},
					{"6-8", "Open to growth but may be somewhat fixed in thinking"},
					{"3-5", "Limited growth orientation or defensive"},
					{"0-2", "Fixed mindset, resistant to feedback or growth"},
				},
			},
		},
	},
}

// defaultRubric grades categories without an explicit rubric.
var defaultRubric = CategoryRubric{
	Category: "General",
	Criteria: []ScoringCriterion{
		{
			Name:        "Relevance",
			Weight:      0.4,
			Description: "How well the answer addresses the question",
			ScoringGuide: []GuideBand{
				{"9-10", "Directly and completely addresses the question"},
				{"6-8", "Addresses question but could be more focused"},
				{"3-5", "Partially addresses question with significant gaps"},
				{"0-2", "Does not address question or admits not knowing"},
			},
		},
		{
			Name:        "Accuracy",
			Weight:      0.4,
			Description: "Correctness of information provided",
			ScoringGuide: []GuideBand{
				{"9-10", "Highly accurate and demonstrates expertise"},
				{"6-8", "Generally accurate with minor errors"},
				{"3-5", "Contains significant errors or misconceptions"},
				{"0-2", "Incorrect or demonstrates lack of knowledge"},
			},
		},
		{
			Name:        "Depth",
			Weight:      0.2,
			Description: "Level of detail and thoughtfulness",
			ScoringGuide: []GuideBand{
				{"9-10", "Detailed, comprehensive response"},
				{"6-8", "Adequate detail but could elaborate"},
				{"3-5", "Superficial, lacks depth"},
				{"0-2", "Minimal substance"},
			},
		},
	},
}

// Registered returns every explicitly registered rubric. Used by tests and
// prompt rendering checks; the map itself stays package-private.
func Registered() []CategoryRubric {
	out := make([]CategoryRubric, 0, len(interviewRubrics))
	for _, rubric := range interviewRubrics {
		out = append(out, rubric)
	}
	return out
}

// Default returns the generic fallback rubric.
func Default() CategoryRubric {
	return defaultRubric
}
