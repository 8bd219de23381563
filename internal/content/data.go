package content

import "github.com/playperu/minicourse/internal/quiz"

var videos = map[int]Video{
	1: {
		ID:    "step1-video",
		Title: "Welcome to Your Learning Journey",
		Description: "Get started with the fundamentals of interactive learning and " +
			"discover what you'll accomplish in this course.",
		MediaURL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		DurationLabel: "1:00",
		ThumbnailURL:  "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=800&h=450&fit=crop&crop=center",
		Transcript: "Welcome to your learning journey! In this introductory video, we'll explore the " +
			"fundamental concepts that will guide you through this interactive course. You'll learn " +
			"about progressive disclosure, active recall techniques, and spaced repetition. By the end " +
			"of this course, you'll have a solid understanding of how to create engaging learning " +
			"experiences that stick with your audience.",
	},
}

var quizzes = map[int]quiz.Quiz{
	2: {
		ID:               "step2-quiz",
		Title:            "Learning Fundamentals Quiz",
		Description:      "Test your understanding of the key concepts from the introductory video.",
		PassThreshold:    70,
		TimeLimitMinutes: 10,
		Questions: []quiz.Question{
			{
				ID:     "q1",
				Kind:   quiz.KindSingleChoice,
				Prompt: "What is the primary goal of progressive disclosure in learning?",
				Options: []string{
					"To overwhelm learners with information",
					"To reveal information gradually to improve comprehension",
					"To test learners immediately",
					"To skip difficult concepts",
				},
				CorrectAnswer: quiz.Text("To reveal information gradually to improve comprehension"),
				Explanation: "Progressive disclosure helps learners build understanding step by step, " +
					"reducing cognitive load and improving retention.",
				Weight: 10,
			},
			{
				ID:            "q2",
				Kind:          quiz.KindTrueFalse,
				Prompt:        "Active recall is more effective for long-term retention than passive review.",
				Options:       []string{"True", "False"},
				CorrectAnswer: quiz.Text("True"),
				Explanation: "Active recall strengthens memory by forcing the brain to retrieve information, " +
					"creating stronger neural connections.",
				Weight: 10,
			},
			{
				ID:            "q3",
				Kind:          quiz.KindFillBlank,
				Prompt:        "The technique of reviewing material at increasing intervals is called _____.",
				CorrectAnswer: quiz.Text("spaced repetition"),
				Explanation:   "Spaced repetition optimizes the timing of reviews to maximize long-term retention of information.",
				Weight:        15,
			},
			{
				ID:     "q4",
				Kind:   quiz.KindMatching,
				Prompt: "Match the learning technique with its primary benefit:",
				Options: []string{
					"Progressive Disclosure",
					"Active Recall",
					"Spaced Repetition",
					"Reduced Cognitive Load",
					"Stronger Memory",
					"Better Retention",
				},
				CorrectAnswer: quiz.Sequence{
					"Progressive Disclosure", "Reduced Cognitive Load",
					"Active Recall", "Stronger Memory",
					"Spaced Repetition", "Better Retention",
				},
				Explanation: "Each technique serves a specific purpose in optimizing the learning process and improving outcomes.",
				Weight:      20,
			},
		},
	},
	4: {
		ID:               "step4-quiz",
		Title:            "Final Assessment",
		Description:      "Demonstrate your mastery of all learning concepts covered in this course.",
		PassThreshold:    80,
		TimeLimitMinutes: 15,
		Questions: []quiz.Question{
			{
				ID:     "q1",
				Kind:   quiz.KindSingleChoice,
				Prompt: "Which of the following is NOT a principle of effective learning design?",
				Options: []string{
					"Progressive disclosure of information",
					"Immediate testing without prior instruction",
					"Context-dependent learning",
					"Metacognitive awareness",
				},
				CorrectAnswer: quiz.Text("Immediate testing without prior instruction"),
				Explanation: "Immediate testing without instruction would hinder learning rather than enhance it. " +
					"Learners need foundational knowledge first.",
				Weight: 15,
			},
			{
				ID:     "q2",
				Kind:   quiz.KindOrdering,
				Prompt: "Arrange the learning process steps in the optimal order:",
				Options: []string{
					"Present Information",
					"Practice Retrieval",
					"Provide Feedback",
					"Apply in Context",
				},
				CorrectAnswer: quiz.Sequence{
					"Present Information",
					"Practice Retrieval",
					"Provide Feedback",
					"Apply in Context",
				},
				Explanation: "This sequence follows evidence-based learning science: introduce concepts, " +
					"practice recall, get feedback, then apply knowledge.",
				Weight: 25,
			},
			{
				ID:            "q3",
				Kind:          quiz.KindTrueFalse,
				Prompt:        "Spaced repetition is more effective than massed practice for long-term retention.",
				Options:       []string{"True", "False"},
				CorrectAnswer: quiz.Text("True"),
				Explanation: "Spaced repetition distributes learning over time, strengthening memory consolidation " +
					"and improving long-term retention.",
				Weight: 10,
			},
			{
				ID:            "q4",
				Kind:          quiz.KindFillBlank,
				Prompt:        "The theory that explains why we can only hold 7±2 items in working memory is called _____.",
				CorrectAnswer: quiz.Text("cognitive load theory"),
				Explanation: "Cognitive Load Theory explains the limitations of working memory and guides the " +
					"design of instructional materials.",
				Weight: 15,
			},
			{
				ID:     "q5",
				Kind:   quiz.KindMatching,
				Prompt: "Match the learning strategy with its primary benefit:",
				Options: []string{
					"Dual Coding",
					"Active Recall",
					"Progressive Disclosure",
					"Enhanced Comprehension",
					"Stronger Neural Connections",
					"Reduced Cognitive Overload",
				},
				CorrectAnswer: quiz.Sequence{
					"Dual Coding", "Enhanced Comprehension",
					"Active Recall", "Stronger Neural Connections",
					"Progressive Disclosure", "Reduced Cognitive Overload",
				},
				Explanation: "Each strategy targets specific cognitive processes to optimize learning effectiveness.",
				Weight:      20,
			},
		},
	},
}

var articles = map[int]Article{
	3: {
		ID:                   "step3-content",
		Title:                "Advanced Learning Techniques",
		Description:          "Explore advanced strategies for creating effective learning experiences.",
		EstimatedReadMinutes: 8,
		Sections: []Section{
			{
				ID:    "section1",
				Title: "The Science of Learning",
				Kind:  SectionText,
				Body: "Understanding how the brain processes and retains information is crucial for designing " +
					"effective learning experiences. Research in cognitive science has revealed several key " +
					"principles that can significantly improve learning outcomes.",
			},
			{
				ID:    "section2",
				Title: "Key Learning Principles",
				Kind:  SectionList,
				Body: "Cognitive Load Theory: Information should be presented in manageable chunks to avoid overwhelming working memory.\n\n" +
					"Dual Coding: Combining verbal and visual information improves comprehension and retention.\n\n" +
					"Context-Dependent Learning: Learning is enhanced when new information is presented in meaningful contexts.\n\n" +
					"Metacognition: Teaching learners how to think about their own learning process improves outcomes.",
			},
			{
				ID:    "section3",
				Title: "Practical Implementation",
				Kind:  SectionCode,
				Body:  "Here's how to structure learning content using cognitive principles:",
				Code: `// Example of chunking information
const learningModule = {
  title: "Advanced Techniques",
  chunks: [
    { topic: "Cognitive Load", duration: "5min" },
    { topic: "Dual Coding", duration: "5min" },
    { topic: "Context Learning", duration: "5min" }
  ],
  assessment: "Quiz after each chunk"
};`,
			},
			{
				ID:       "section4",
				Title:    "Visual Learning Aids",
				Kind:     SectionImage,
				Body:     "Visual representations can significantly enhance understanding and retention of complex concepts.",
				ImageURL: "/api/placeholder/600/300",
			},
		},
	},
}
