package i18n

var german = bundle{
	keyLanguageName: "Deutsch",

	KeyGreeting: "Willkommen an Bord! Ich bin Talent Scout. Vielen Dank, dass Sie sich heute die Zeit genommen haben, mit mir zu sprechen. Ich schätze Ihr Interesse an der Position.\n\nZu Beginn, könnten Sie mir bitte Ihren vollständigen Namen nennen?",

	KeyNextName:      "Vielen Dank für Ihr Interesse! Könnten Sie mir bitte Ihren vollständigen Namen nennen?",
	KeyNextEmail:     "Großartig! Könnten Sie mir jetzt bitte Ihre E-Mail-Adresse mitteilen?",
	KeyNextPhone:     "Danke! Unter welcher Telefonnummer sind Sie am besten erreichbar?",
	KeyNextExp:       "Wie viele Jahre Berufserfahrung haben Sie?",
	KeyNextPosition:  "Für welche Position interessieren Sie sich?",
	KeyNextLocation:  "Wo befinden Sie sich derzeit?",
	KeyNextTechStack: "Mit welchen Technologien sind Sie vertraut? Bitte listen Sie Ihren Technologie-Stack auf.",

	KeyTechIntro:      "Hallo {name},\n\nvielen Dank, dass Sie sich die Zeit genommen haben, Ihren Hintergrund und Ihre Erfahrung mit mir zu besprechen. Basierend auf unserem Gespräch scheint es, als hätten Sie eine solide Grundlage in {tech_stack}. Um Ihre Fähigkeiten besser bewerten zu können, werde ich Ihnen nun einige technische Fragen zu Ihrem Technologie-Stack stellen.\n\nLassen Sie uns mit den technischen Fragen beginnen.",
	KeyQuestionFormat: "Frage {current} von {total}:",
	KeyThankYouAnswer: "Vielen Dank für Ihre Antwort!",
	KeyFarewell:       "Vielen Dank für Ihre Zeit heute. Wir werden Sie in Kürze über die nächsten Schritte im Einstellungsprozess informieren.",

	KeyUpdateRequest:   "Natürlich! Ich kann Ihnen helfen, Ihre Informationen zu aktualisieren. Was möchten Sie aktualisieren? Bitte geben Sie die neuen Informationen an.",
	KeyUpdateLocation:  "Sicher! Bitte geben Sie Ihren aktuellen Standort an.",
	KeyUpdateEmail:     "Natürlich! Bitte geben Sie Ihre aktualisierte E-Mail-Adresse an.",
	KeyUpdatePhone:     "Kein Problem! Bitte geben Sie Ihre aktualisierte Telefonnummer an.",
	KeyUpdateConfirmed: "Danke! Ich habe Ihre Informationen aktualisiert. Lassen Sie uns mit den technischen Fragen fortfahren.",

	KeyErrorProcessing: "Es tut mir leid, aber ich habe Schwierigkeiten, Ihre Antwort zu verarbeiten. Könnten Sie es bitte noch einmal versuchen?",

	KeySystemPrompt: "Sie sind ein professioneller und freundlicher Einstellungsassistent für TalentScout, eine auf Technologie-Vermittlungen spezialisierte Personalagentur. Ihre Aufgabe ist es:\n1. Wesentliche Kandidateninformationen zu sammeln\n2. Nach ihrer technischen Expertise zu fragen\n3. Relevante technische Fragen basierend auf ihrem Technologie-Stack zu generieren\n4. Einen professionellen, aber gesprächigen Ton beizubehalten\n5. Sich auf den Einstellungsprozess zu konzentrieren, ohne vom Zweck abzuweichen\n\nSeien Sie immer höflich, ermutigend und professionell. Wenn der Kandidat unklare Informationen liefert, bitten Sie um Klärung. Antworten Sie auf Deutsch.",

	KeyExtractionInstruction:   "Extrahieren Sie die folgenden Informationen aus der Nachricht des Benutzers, falls vorhanden",
	KeyNextQuestionInstruction: "Generieren Sie eine angemessene Frage, um die nächste fehlende Information zu sammeln. Seien Sie gesprächig und natürlich.",
	KeyQuestionsInstruction:    "Generieren Sie Fragen, die für das Erfahrungsniveau des Kandidaten angemessen sind, verschiedene Aspekte seiner deklarierten Technologien abdecken, spezifisch und praktisch sind und reales Wissen bewerten können.",

	KeyFallbackQuestion1: "Können Sie Ihre Erfahrung mit {tech} beschreiben?",
	KeyFallbackQuestion2: "Was war das herausforderndste technische Problem, das Sie kürzlich gelöst haben?",
	KeyFallbackQuestion3: "Wie halten Sie sich über neue Technologien in Ihrem Bereich auf dem Laufenden?",

	KeyLabelSummary:      "Kandidatenzusammenfassung",
	KeyLabelPersonalInfo: "Persönliche Informationen",
	KeyLabelProfessional: "Berufliche Details",
	KeyLabelName:         "Name",
	KeyLabelEmail:        "E-Mail",
	KeyLabelPhone:        "Telefon",
	KeyLabelLocation:     "Standort",
	KeyLabelExperience:   "Erfahrung",
	KeyLabelYears:        "Jahre",
	KeyLabelPositions:    "Positionen",
	KeyLabelTechStack:    "Technologie-Stack",
}
