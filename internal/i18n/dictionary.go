package i18n

// dictionaries holds the translated strings per language, keyed by the
// dotted identifiers emitted by the calculator and the CLI.
var dictionaries = map[Lang]map[string]string{
	FR: {
		"coverages.rc.label":                   "Responsabilité Civile",
		"coverages.surcharge.individual.label": "Cotisation Membre (Individuel)",
		"coverages.omnium.label":               "Omnium complète",
		"coverages.omniumType.full":            "Omnium Complète",
		"coverages.omniumType.mini":            "Mini-Omnium",
		"coverages.assistance.label":           "Assistance",
		"coverages.legalProtection.label":      "Protection Juridique",
		"coverages.driverProtection.label":     "Protection des conducteurs",
		"coverages.fireTheftResting.label":     "Incendie / Vol au repos",
		"coverages.assistancePlus.label":       "Extension assistance Europe + véhicule remplacement",

		"notes.request.incomplete":         "Complétez le formulaire pour voir votre estimation.",
		"notes.rc.tooYoung":                "Véhicule trop récent pour la Responsabilité Civile.",
		"notes.omnium.valueMissing":        "Indiquez la valeur du véhicule pour calculer l'Omnium.",
		"notes.omnium.tooYoung":            "Véhicule trop récent pour l'Omnium.",
		"notes.omnium.aboveCeiling":        "Valeur supérieure au dernier palier : prime à confirmer par BEHVA.",
		"notes.omnium.storageVerification": "L'Omnium complète pour un véhicule non immatriculé nécessite une vérification avec BEHVA.",

		"summary.title":              "Votre estimation",
		"summary.annualPremium":      "Prime annuelle estimée",
		"summary.monthlyPremium":     "Soit par mois",
		"summary.breakdown":          "Détail des garanties",
		"summary.disclaimer":         "Estimation indicative – l’offre finale sera confirmée par BEHVA.",
		"summary.submitError":        "Une erreur est survenue lors de l'envoi du formulaire. Veuillez réessayer.",
		"summary.successTitle":       "Merci !",
		"summary.successMessage":     "Votre demande a été enregistrée. Nous vous contacterons bientôt à l'adresse {email} avec une offre complète.",
		"summary.calculationDetails": "Détails du calcul",
		"summary.notes":              "Remarques",

		"summary.details.category":     "Catégorie",
		"summary.details.vehicleAge":   "Âge du véhicule",
		"summary.details.years":        "ans",
		"summary.details.ageGroup":     "Groupe d'âge",
		"summary.details.rank":         "Rang",
		"summary.details.power":        "Puissance",
		"summary.details.rule":         "Règle appliquée",
		"summary.details.condition":    "Condition",
		"summary.details.vehicleValue": "Valeur du véhicule",
		"summary.details.omniumType":   "Type d'omnium",

		"warnings.omnium": "Combinaison à vérifier",

		"validation.required":          "Ce champ est obligatoire",
		"validation.firstNameRequired": "Le prénom est obligatoire",
		"validation.lastNameRequired":  "Le nom est obligatoire",
		"validation.emailRequired":     "L'email est obligatoire",
		"validation.emailInvalid":      "Adresse email invalide",
		"validation.dateRequired":      "La date est obligatoire",

		"options.vehicleTypes.car":        "Voiture",
		"options.vehicleTypes.motorcycle": "Moto",
		"options.vehicleTypes.van":        "Camionnette",
		"options.vehicleTypes.tractor":    "Tracteur",
		"options.vehicleTypes.truck":      "Camion",
		"options.vehicleTypes.bus":        "Autobus",
		"options.vehicleTypes.trailer":    "Remorque",
		"options.vehicleTypes.caravan":    "Caravane",
		"options.vehicleTypes.moped":      "Cyclomoteur",
	},
	EN: {
		"coverages.rc.label":                   "Civil Liability",
		"coverages.surcharge.individual.label": "Membership Fee (Individual)",
		"coverages.omnium.label":               "Full Omnium",
		"coverages.omniumType.full":            "Full Omnium",
		"coverages.omniumType.mini":            "Mini-Omnium",
		"coverages.assistance.label":           "Assistance",
		"coverages.legalProtection.label":      "Legal Protection",
		"coverages.driverProtection.label":     "Driver Protection",
		"coverages.fireTheftResting.label":     "Fire / Theft Resting",
		"coverages.assistancePlus.label":       "Assistance Extension Europe + Replacement Vehicle",

		"notes.request.incomplete":         "Complete the form to see your estimate.",
		"notes.rc.tooYoung":                "Vehicle is too young for civil liability cover.",
		"notes.omnium.valueMissing":        "Enter the vehicle value to price the Omnium.",
		"notes.omnium.tooYoung":            "Vehicle is too young for Omnium cover.",
		"notes.omnium.aboveCeiling":        "Value above the highest tier: premium to be confirmed by BEHVA.",
		"notes.omnium.storageVerification": "Full Omnium for an unregistered vehicle requires verification with BEHVA.",

		"summary.title":              "Your Estimate",
		"summary.annualPremium":      "Estimated Annual Premium",
		"summary.monthlyPremium":     "Or per month",
		"summary.breakdown":          "Coverage Details",
		"summary.disclaimer":         "Indicative estimate – final offer will be confirmed by BEHVA.",
		"summary.submitError":        "An error occurred while submitting the form. Please try again.",
		"summary.successTitle":       "Thank you!",
		"summary.successMessage":     "Your request has been recorded. We will contact you soon at {email} with a full offer.",
		"summary.calculationDetails": "Calculation Details",
		"summary.notes":              "Notes",

		"summary.details.category":     "Category",
		"summary.details.vehicleAge":   "Vehicle Age",
		"summary.details.years":        "years",
		"summary.details.ageGroup":     "Age Group",
		"summary.details.rank":         "Rank",
		"summary.details.power":        "Power",
		"summary.details.rule":         "Applied Rule",
		"summary.details.condition":    "Condition",
		"summary.details.vehicleValue": "Vehicle Value",
		"summary.details.omniumType":   "Omnium Type",

		"warnings.omnium": "Combination to verify",

		"validation.required":          "This field is required",
		"validation.firstNameRequired": "First name is required",
		"validation.lastNameRequired":  "Last name is required",
		"validation.emailRequired":     "Email is required",
		"validation.emailInvalid":      "Invalid email address",
		"validation.dateRequired":      "Date is required",

		"options.vehicleTypes.car":        "Car",
		"options.vehicleTypes.motorcycle": "Motorcycle",
		"options.vehicleTypes.van":        "Van",
		"options.vehicleTypes.tractor":    "Tractor",
		"options.vehicleTypes.truck":      "Truck",
		"options.vehicleTypes.bus":        "Bus",
		"options.vehicleTypes.trailer":    "Trailer",
		"options.vehicleTypes.caravan":    "Caravan",
		"options.vehicleTypes.moped":      "Moped",
	},
	NL: {
		"coverages.rc.label":                   "Burgerlijke Aansprakelijkheid",
		"coverages.surcharge.individual.label": "Lidmaatschapsbijdrage (Individueel)",
		"coverages.omnium.label":               "Volledige Omnium",
		"coverages.omniumType.full":            "Volledige Omnium",
		"coverages.omniumType.mini":            "Mini-Omnium",
		"coverages.assistance.label":           "Bijstand",
		"coverages.legalProtection.label":      "Rechtsbijstand",
		"coverages.driverProtection.label":     "Bestuurdersbescherming",
		"coverages.fireTheftResting.label":     "Brand / Diefstal (Stilstand)",
		"coverages.assistancePlus.label":       "Uitbreiding Bijstand Europa + Vervangwagen",

		"notes.request.incomplete":         "Vul het formulier in om uw schatting te zien.",
		"notes.rc.tooYoung":                "Voertuig is te recent voor de burgerlijke aansprakelijkheid.",
		"notes.omnium.valueMissing":        "Vul de waarde van het voertuig in om de Omnium te berekenen.",
		"notes.omnium.tooYoung":            "Voertuig is te recent voor de Omnium.",
		"notes.omnium.aboveCeiling":        "Waarde boven de hoogste schijf: premie te bevestigen door BEHVA.",
		"notes.omnium.storageVerification": "Volledige Omnium voor een niet-ingeschreven voertuig vereist verificatie met BEHVA.",

		"summary.title":              "Uw Schatting",
		"summary.annualPremium":      "Geschatte Jaarpremie",
		"summary.monthlyPremium":     "Of per maand",
		"summary.breakdown":          "Detail van de waarborgen",
		"summary.disclaimer":         "Indicatieve schatting – het definitieve aanbod wordt bevestigd door BEHVA.",
		"summary.submitError":        "Er is een fout opgetreden bij het verzenden van het formulier. Probeer het opnieuw.",
		"summary.successTitle":       "Bedankt!",
		"summary.successMessage":     "Uw aanvraag is geregistreerd. We nemen binnenkort contact met u op via {email} met een volledig aanbod.",
		"summary.calculationDetails": "Berekeningsdetails",
		"summary.notes":              "Opmerkingen",

		"summary.details.category":     "Categorie",
		"summary.details.vehicleAge":   "Leeftijd voertuig",
		"summary.details.years":        "jaar",
		"summary.details.ageGroup":     "Leeftijdsgroep",
		"summary.details.rank":         "Rang",
		"summary.details.power":        "Vermogen",
		"summary.details.rule":         "Toegepaste Regel",
		"summary.details.condition":    "Voorwaarde",
		"summary.details.vehicleValue": "Waarde voertuig",
		"summary.details.omniumType":   "Type omnium",

		"warnings.omnium": "Combinatie te verifiëren",

		"validation.required":          "Dit veld is verplicht",
		"validation.firstNameRequired": "Voornaam is verplicht",
		"validation.lastNameRequired":  "Achternaam is verplicht",
		"validation.emailRequired":     "E-mail is verplicht",
		"validation.emailInvalid":      "Ongeldig e-mailadres",
		"validation.dateRequired":      "Datum is verplicht",

		"options.vehicleTypes.car":        "Auto",
		"options.vehicleTypes.motorcycle": "Motorfiets",
		"options.vehicleTypes.van":        "Bestelwagen",
		"options.vehicleTypes.tractor":    "Tractor",
		"options.vehicleTypes.truck":      "Vrachtwagen",
		"options.vehicleTypes.bus":        "Bus",
		"options.vehicleTypes.trailer":    "Aanhangwagen",
		"options.vehicleTypes.caravan":    "Caravan",
		"options.vehicleTypes.moped":      "Bromfiets",
	},
}
