package i18n

var french = bundle{
	keyLanguageName: "Français",

	KeyGreeting: "Bienvenue à bord ! Je suis Talent Scout. Merci de prendre le temps de discuter avec moi aujourd'hui. J'apprécie votre intérêt pour le poste.\n\nPour commencer, pourriez-vous me donner votre nom complet ?",

	KeyNextName:      "Merci de votre intérêt ! Pourriez-vous me donner votre nom complet ?",
	KeyNextEmail:     "Parfait ! Pourriez-vous maintenant me communiquer votre adresse e-mail ?",
	KeyNextPhone:     "Merci ! Quel est le meilleur numéro de téléphone pour vous joindre ?",
	KeyNextExp:       "Combien d'années d'expérience professionnelle avez-vous ?",
	KeyNextPosition:  "À quel poste souhaitez-vous postuler ?",
	KeyNextLocation:  "Où êtes-vous actuellement situé ?",
	KeyNextTechStack: "Quelles technologies maîtrisez-vous ? Veuillez lister votre stack technique.",

	KeyTechIntro:      "Bonjour {name},\n\nMerci d'avoir pris le temps de discuter de votre parcours et de votre expérience avec moi. D'après notre conversation, vous semblez avoir de solides bases en {tech_stack}. Afin de mieux évaluer vos compétences, je vais maintenant vous poser quelques questions techniques liées à votre stack.\n\nCommençons par les questions techniques.",
	KeyQuestionFormat: "Question {current} sur {total} :",
	KeyThankYouAnswer: "Merci pour votre réponse !",
	KeyFarewell:       "Merci pour votre temps aujourd'hui. Nous vous tiendrons informé prochainement des prochaines étapes du processus de recrutement.",

	KeyUpdateRequest:   "Bien sûr ! Je peux vous aider à mettre à jour vos informations. Que souhaitez-vous modifier ? Veuillez fournir les nouvelles informations.",
	KeyUpdateLocation:  "Bien sûr ! Veuillez indiquer votre localisation actuelle.",
	KeyUpdateEmail:     "Bien sûr ! Veuillez fournir votre nouvelle adresse e-mail.",
	KeyUpdatePhone:     "Pas de problème ! Veuillez fournir votre nouveau numéro de téléphone.",
	KeyUpdateConfirmed: "Merci ! J'ai mis à jour vos informations. Continuons avec les questions techniques.",

	KeyErrorProcessing: "Je suis désolé, mais j'ai du mal à traiter votre réponse. Pourriez-vous réessayer ?",

	KeySystemPrompt: "Vous êtes un assistant de recrutement professionnel et amical pour TalentScout, une agence de recrutement spécialisée dans les placements technologiques. Votre rôle est de :\n1. Recueillir les informations essentielles du candidat\n2. Poser des questions sur son expertise technique\n3. Générer des questions techniques pertinentes basées sur sa stack technique\n4. Maintenir un ton professionnel mais conversationnel\n5. Rester concentré sur le processus de recrutement sans dévier de l'objectif\n\nSoyez toujours poli, encourageant et professionnel. Si le candidat fournit des informations peu claires, demandez des précisions. Répondez en français.",

	KeyExtractionInstruction:   "Extrayez les informations suivantes du message de l'utilisateur si présentes",
	KeyNextQuestionInstruction: "Générez une question appropriée pour collecter la prochaine information manquante. Soyez conversationnel et naturel.",
	KeyQuestionsInstruction:    "Générez des questions appropriées au niveau d'expérience du candidat, couvrant différents aspects de ses technologies déclarées, spécifiques et pratiques, et permettant d'évaluer des connaissances concrètes.",

	KeyFallbackQuestion1: "Pouvez-vous décrire votre expérience avec {tech} ?",
	KeyFallbackQuestion2: "Quel est le problème technique le plus difficile que vous ayez résolu récemment ?",
	KeyFallbackQuestion3: "Comment restez-vous à jour sur les nouvelles technologies dans votre domaine ?",

	KeyLabelSummary:      "Résumé du candidat",
	KeyLabelPersonalInfo: "Informations personnelles",
	KeyLabelProfessional: "Détails professionnels",
	KeyLabelName:         "Nom",
	KeyLabelEmail:        "E-mail",
	KeyLabelPhone:        "Téléphone",
	KeyLabelLocation:     "Localisation",
	KeyLabelExperience:   "Expérience",
	KeyLabelYears:        "ans",
	KeyLabelPositions:    "Postes",
	KeyLabelTechStack:    "Stack technique",
}
