package i18n

var english = bundle{
	keyLanguageName: "English",

	KeyGreeting: "Welcome aboard! I am Talent Scout. Thank you for taking the time to speak with me today. I appreciate your interest in the position.\n\nTo begin, could you please tell me your full name?",

	KeyNextName:      "Thank you for your interest! Could you please tell me your full name?",
	KeyNextEmail:     "Great! Now, could you please share your email address?",
	KeyNextPhone:     "Thank you! What's the best phone number to reach you?",
	KeyNextExp:       "How many years of professional experience do you have?",
	KeyNextPosition:  "What position are you interested in applying for?",
	KeyNextLocation:  "Where are you currently located?",
	KeyNextTechStack: "What technologies are you proficient in? Please list your tech stack.",

	KeyTechIntro:      "Hello {name},\n\nThank you for taking the time to discuss your background and experience with me. Based on our conversation, it seems like you have a strong foundation in {tech_stack}. To better evaluate your skills, I will now ask you a few technical questions related to your tech stack.\n\nLet's begin with the technical questions.",
	KeyQuestionFormat: "Question {current} of {total}:",
	KeyThankYouAnswer: "Thank you for your answer!",
	KeyFarewell:       "Thank you for your time today. We will update you shortly about the next steps in the hiring process.",

	KeyUpdateRequest:   "Of course! I can help you update your information. What would you like to update? Please provide the new information.",
	KeyUpdateLocation:  "Sure! Please provide your current location.",
	KeyUpdateEmail:     "Of course! Please provide your updated email address.",
	KeyUpdatePhone:     "No problem! Please provide your updated phone number.",
	KeyUpdateConfirmed: "Thank you! I've updated your information. Let's continue with the technical questions.",

	KeyErrorProcessing: "I apologize, but I'm having trouble processing your response. Could you please try again?",

	KeySystemPrompt: "You are a professional and friendly hiring assistant for TalentScout, a recruitment agency specializing in technology placements. Your role is to:\n1. Gather essential candidate information\n2. Ask about their technical expertise\n3. Generate relevant technical questions based on their tech stack\n4. Maintain a professional yet conversational tone\n5. Stay focused on the hiring process without deviating from the purpose\n\nAlways be polite, encouraging, and professional. If the candidate provides unclear information, ask for clarification.",

	KeyExtractionInstruction:   "Extract the following information from the user's message if present",
	KeyNextQuestionInstruction: "Generate an appropriate question to collect the next piece of missing information. Be conversational and natural.",
	KeyQuestionsInstruction:    "Generate questions that are appropriate for the candidate's experience level, cover different aspects of their declared technologies, are specific and practical, and can assess real-world knowledge.",

	KeyFallbackQuestion1: "Can you describe your experience with {tech}?",
	KeyFallbackQuestion2: "What's the most challenging technical problem you've solved recently?",
	KeyFallbackQuestion3: "How do you stay updated with new technologies in your field?",

	KeyLabelSummary:      "Candidate Summary",
	KeyLabelPersonalInfo: "Personal Information",
	KeyLabelProfessional: "Professional Details",
	KeyLabelName:         "Name",
	KeyLabelEmail:        "Email",
	KeyLabelPhone:        "Phone",
	KeyLabelLocation:     "Location",
	KeyLabelExperience:   "Experience",
	KeyLabelYears:        "years",
	KeyLabelPositions:    "Positions",
	KeyLabelTechStack:    "Tech Stack",
}
