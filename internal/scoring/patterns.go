package scoring

// defaultPatterns is the built-in phrase table. Order is significant: flags and
// highlights are reported in this order.
var defaultPatterns = [...]Pattern{
	// Payment methods
	{Phrase: "gift card", Weight: 30, Description: "Requests payment via gift card"},
	{Phrase: "crypto", Weight: 25, Description: "Mentions cryptocurrency payment"},
	{Phrase: "bitcoin", Weight: 25, Description: "Mentions Bitcoin payment"},
	{Phrase: "ethereum", Weight: 25, Description: "Mentions Ethereum payment"},
	{Phrase: "wire transfer", Weight: 25, Description: "Requests wire transfer"},
	{Phrase: "western union", Weight: 30, Description: "Mentions Western Union"},
	{Phrase: "money gram", Weight: 30, Description: "Mentions MoneyGram transfer"},
	{Phrase: "bank transfer", Weight: 20, Description: "Requests bank transfer"},
	{Phrase: "paypal", Weight: 15, Description: "Requests PayPal payment"},
	{Phrase: "amazon gift", Weight: 30, Description: "Requests Amazon gift card"},
	{Phrase: "itunes", Weight: 30, Description: "Mentions iTunes gift card"},
	{Phrase: "fee", Weight: 20, Description: "Mentions upfront fee"},
	{Phrase: "advance payment", Weight: 25, Description: "Requests advance payment"},
	{Phrase: "processing fee", Weight: 28, Description: "Mentions processing/setup fee"},
	{Phrase: "initial investment", Weight: 25, Description: "Requires initial investment"},
	{Phrase: "security deposit", Weight: 25, Description: "Requests security deposit"},

	// Off-platform communication
	{Phrase: "telegram", Weight: 20, Description: "Asks to move conversation to Telegram"},
	{Phrase: "whatsapp", Weight: 15, Description: "Asks to move to WhatsApp"},
	{Phrase: "signal", Weight: 15, Description: "Asks to move to Signal"},
	{Phrase: "viber", Weight: 15, Description: "Asks to move to Viber"},
	{Phrase: "wechat", Weight: 18, Description: "Asks to move to WeChat"},
	{Phrase: "google hangouts", Weight: 12, Description: "Asks to move to Google Hangouts"},
	{Phrase: "text me", Weight: 10, Description: "Requests to use text/SMS"},
	{Phrase: "private email", Weight: 18, Description: "Requests private email communication"},

	// Unsolicited contact & spammy language
	{Phrase: "hi there", Weight: 5, Description: "Generic greeting (potential mass message)"},
	{Phrase: "dear friend", Weight: 8, Description: "Overly formal generic greeting"},
	{Phrase: "i found your", Weight: 12, Description: "Claims to have found profile (unsolicited)"},
	{Phrase: "contact me directly", Weight: 12, Description: "Pushes direct personal contact"},
	{Phrase: "check this link", Weight: 20, Description: "Requests to click suspicious link"},
	{Phrase: "verify your account", Weight: 25, Description: "Phishing attempt indicator"},
	{Phrase: "confirm your identity", Weight: 20, Description: "Phishing indicator"},

	// Personal information requests
	{Phrase: "social security", Weight: 35, Description: "Requests SSN"},
	{Phrase: "bank account", Weight: 35, Description: "Requests bank account details"},
	{Phrase: "routing number", Weight: 35, Description: "Requests banking information"},
	{Phrase: "credit card", Weight: 35, Description: "Requests credit card information"},
	{Phrase: "passport", Weight: 30, Description: "Requests passport/ID copy"},
	{Phrase: "driver license", Weight: 30, Description: "Requests driver's license"},
	{Phrase: "home address", Weight: 25, Description: "Requests home address"},
	{Phrase: "phone number", Weight: 15, Description: "Early request for phone number"},
	{Phrase: "date of birth", Weight: 20, Description: "Requests date of birth"},

	// Job description red flags
	{Phrase: "work from home", Weight: 10, Description: "Generic work-from-home offer"},
	{Phrase: "no experience", Weight: 15, Description: "Claims no experience required"},
	{Phrase: "unlimited earning", Weight: 20, Description: "Promises unlimited earnings"},
	{Phrase: "get paid daily", Weight: 18, Description: "Claims daily payment"},
	{Phrase: "easy money", Weight: 15, Description: "Promises easy/quick money"},
	{Phrase: "part time", Weight: 8, Description: "Part-time position (low indicator)"},
	{Phrase: "quick start", Weight: 12, Description: "Pressure to start immediately"},
	{Phrase: "data entry", Weight: 10, Description: "Generic data entry job"},
	{Phrase: "virtual assistant", Weight: 8, Description: "Vague assistant role"},
	{Phrase: "customer service", Weight: 8, Description: "Generic customer service"},

	// Urgency & pressure tactics
	{Phrase: "urgent", Weight: 10, Description: "Creates urgency pressure"},
	{Phrase: "asap", Weight: 10, Description: "Demands ASAP response"},
	{Phrase: "limited time", Weight: 12, Description: "Time-limited opportunity"},
	{Phrase: "hurry", Weight: 10, Description: "Rushing pressure tactic"},
	{Phrase: "act now", Weight: 10, Description: "Pressure to act immediately"},
	{Phrase: "don't miss out", Weight: 12, Description: "FOMO tactic"},
	{Phrase: "today only", Weight: 12, Description: "Artificial deadline"},
	{Phrase: "spots available", Weight: 10, Description: "Artificial scarcity"},

	// Unrealistic promises
	{Phrase: "guaranteed", Weight: 15, Description: "Uses guaranteed income language"},
	{Phrase: "risk free", Weight: 18, Description: "Claims risk-free earnings"},
	{Phrase: "make $500", Weight: 12, Description: "Unsubstantiated income claim (small)"},
	{Phrase: "make $1000", Weight: 15, Description: "Unsubstantiated income claim (large)"},
	{Phrase: "make $5000", Weight: 20, Description: "Unsubstantiated income claim (very large)"},
	{Phrase: "earn passive", Weight: 12, Description: "Passive income promise"},
	{Phrase: "financial freedom", Weight: 10, Description: "Vague freedom/wealth promise"},
	{Phrase: "life changing", Weight: 12, Description: "Exaggerated opportunity claims"},
	{Phrase: "millionaire", Weight: 15, Description: "Get rich quick indicator"},

	// Vague/evasive language
	{Phrase: "it's complicated", Weight: 8, Description: "Evasive explanation"},
	{Phrase: "i can't explain", Weight: 15, Description: "Refuses to explain details"},
	{Phrase: "you'll understand later", Weight: 18, Description: "Defers important details"},
	{Phrase: "just trust me", Weight: 20, Description: "Requests blind trust"},
	{Phrase: "no questions asked", Weight: 15, Description: "Discourages questions"},
	{Phrase: "don't ask", Weight: 18, Description: "Explicitly avoids transparency"},

	// Company/credential red flags
	{Phrase: "newly opened", Weight: 12, Description: "Recently created company claim"},
	{Phrase: "secret company", Weight: 25, Description: "Claims to be secret/exclusive"},
	{Phrase: "top secret", Weight: 25, Description: "Suspicious secrecy claim"},
	{Phrase: "we are hiring", Weight: 5, Description: "Generic recruitment (low indicator)"},
	{Phrase: "start your business", Weight: 10, Description: "MLM/recruitment scheme indicator"},
	{Phrase: "be your own boss", Weight: 12, Description: "MLM/entrepreneurship pitch"},
	{Phrase: "recruit others", Weight: 22, Description: "Multi-level marketing indicator"},
	{Phrase: "referral bonus", Weight: 15, Description: "MLM referral emphasis"},
	{Phrase: "hire you", Weight: 5, Description: "Generic hiring language"},
	{Phrase: "hiring immediately", Weight: 8, Description: "Suspicious immediate hiring claim"},

	// Duplicate/batch message indicators
	{Phrase: "copy and paste", Weight: 12, Description: "Likely mass message"},
	{Phrase: "forwarding this", Weight: 10, Description: "Forwarded mass message"},
	{Phrase: "bcc", Weight: 10, Description: "Mass mailing indicator"},

	// Additional payment methods
	{Phrase: "zelle", Weight: 18, Description: "Requests Zelle transfer"},
	{Phrase: "moneypak", Weight: 28, Description: "Mentions MoneyPak payment"},
	{Phrase: "google play", Weight: 28, Description: "Requests Google Play card"},
	{Phrase: "steam card", Weight: 25, Description: "Requests Steam gift card"},
	{Phrase: "walmart card", Weight: 25, Description: "Requests Walmart gift card"},
	{Phrase: "target card", Weight: 25, Description: "Requests Target gift card"},
	{Phrase: "square cash", Weight: 18, Description: "Mentions Square Cash"},
	{Phrase: "venmo", Weight: 15, Description: "Requests Venmo payment"},
	{Phrase: "stripe", Weight: 15, Description: "Allows Stripe payment (context dependent)"},
	{Phrase: "ach transfer", Weight: 22, Description: "Requests ACH bank transfer"},
	{Phrase: "check payment", Weight: 15, Description: "Requests check/cheque"},
	{Phrase: "mobile wallet", Weight: 12, Description: "Generic mobile wallet payment"},
	{Phrase: "nft", Weight: 20, Description: "Involves NFT/blockchain transaction"},
	{Phrase: "wallet address", Weight: 25, Description: "Requests cryptocurrency wallet address"},

	// More communication platforms
	{Phrase: "discord", Weight: 12, Description: "Asks to move to Discord"},
	{Phrase: "slack", Weight: 12, Description: "Asks to move to Slack"},
	{Phrase: "skype", Weight: 12, Description: "Asks to move to Skype"},
	{Phrase: "messenger", Weight: 10, Description: "Asks to move to Messenger"},
	{Phrase: "instagram", Weight: 12, Description: "Asks to connect via Instagram"},
	{Phrase: "facebook", Weight: 10, Description: "Asks to connect on Facebook"},
	{Phrase: "linkedin", Weight: 5, Description: "Mentions LinkedIn (lower risk)"},
	{Phrase: "line app", Weight: 15, Description: "Asks to move to LINE app"},
	{Phrase: "snapchat", Weight: 12, Description: "Asks to communicate via Snapchat"},
	{Phrase: "tiktok", Weight: 12, Description: "Asks to connect via TikTok"},
	{Phrase: "threema", Weight: 18, Description: "Asks to use Threema"},

	// Visa/immigration scams
	{Phrase: "work visa", Weight: 20, Description: "Promises to sponsor work visa"},
	{Phrase: "green card", Weight: 20, Description: "Claims to help with green card"},
	{Phrase: "sponsorship", Weight: 18, Description: "Offers employment sponsorship"},
	{Phrase: "immigration lawyer", Weight: 15, Description: "Mentions immigration help"},
	{Phrase: "uk visa", Weight: 18, Description: "UK work visa promise"},
	{Phrase: "au visa", Weight: 18, Description: "Australian visa promise"},
	{Phrase: "canada visa", Weight: 18, Description: "Canada visa promise"},

	// Document & identity red flags
	{Phrase: "passport scan", Weight: 32, Description: "Requests scanned passport"},
	{Phrase: "id photo", Weight: 30, Description: "Requests ID photo"},
	{Phrase: "background check", Weight: 12, Description: "Mentions background check fee"},
	{Phrase: "verification fee", Weight: 28, Description: "Charges for verification"},
	{Phrase: "credit check", Weight: 18, Description: "Requests credit check"},
	{Phrase: "document verification", Weight: 20, Description: "Requests document verification"},
	{Phrase: "identity verification", Weight: 20, Description: "Unclear identity verification"},
	{Phrase: "sign this contract", Weight: 8, Description: "Rushed contract signing"},
	{Phrase: "non disclosure", Weight: 15, Description: "NDA before job details"},
	{Phrase: "nda agreement", Weight: 15, Description: "Suspicious NDA request"},

	// Interview & hiring red flags
	{Phrase: "no interview", Weight: 18, Description: "Hired without interview"},
	{Phrase: "phone interview", Weight: 5, Description: "Phone interview mention (low risk)"},
	{Phrase: "skip the interview", Weight: 22, Description: "Bypasses interview process"},
	{Phrase: "hire you today", Weight: 15, Description: "Instant job offer"},
	{Phrase: "send your resume", Weight: 5, Description: "Request for resume (low risk)"},
	{Phrase: "cover letter", Weight: 3, Description: "Cover letter request (very low risk)"},
	{Phrase: "start tomorrow", Weight: 15, Description: "Expects immediate start"},
	{Phrase: "we like you already", Weight: 12, Description: "Premature job praise"},

	// More unrealistic claims
	{Phrase: "doubles your money", Weight: 25, Description: "Claims to double income"},
	{Phrase: "no experience needed", Weight: 14, Description: "No qualifications required"},
	{Phrase: "zero experience", Weight: 15, Description: "Zero experience OK"},
	{Phrase: "no skills", Weight: 15, Description: "No skills needed claim"},
	{Phrase: "no training needed", Weight: 12, Description: "No training required"},
	{Phrase: "work whenever", Weight: 10, Description: "Flexible work claim"},
	{Phrase: "flexible hours", Weight: 5, Description: "Flexible hours mention (low risk)"},
	{Phrase: "$100 per day", Weight: 14, Description: "Specific unrealistic daily income"},
	{Phrase: "$200 per hour", Weight: 18, Description: "Unrealistic hourly rate"},
	{Phrase: "100% commission", Weight: 20, Description: "All commission-based work"},
	{Phrase: "no boss", Weight: 12, Description: "No supervision claim"},
	{Phrase: "zero experience required", Weight: 16, Description: "Zero qualifications needed"},

	// Overly friendly/love scam tactics
	{Phrase: "sweetheart", Weight: 18, Description: "Uses romantic language"},
	{Phrase: "my dear", Weight: 12, Description: "Overly affectionate language"},
	{Phrase: "love you", Weight: 22, Description: "Premature romantic language"},
	{Phrase: "beautiful person", Weight: 15, Description: "Complimentary romantic language"},
	{Phrase: "soulmate", Weight: 20, Description: "Romance scam indicator"},
	{Phrase: "miss you", Weight: 15, Description: "Premature emotional language"},
	{Phrase: "special person", Weight: 12, Description: "Excessive compliments"},
	{Phrase: "handsome", Weight: 10, Description: "Complimentary attractiveness language"},

	// Inconsistency & red flags
	{Phrase: "multiple jobs", Weight: 12, Description: "Offers multiple simultaneous jobs"},
	{Phrase: "different company", Weight: 8, Description: "Company name inconsistency"},
	{Phrase: "work for me", Weight: 10, Description: "Direct personal employment"},
	{Phrase: "private company", Weight: 8, Description: "Vague private company claims"},
	{Phrase: "offshore", Weight: 20, Description: "Offshore employment mention"},
	{Phrase: "international", Weight: 8, Description: "International work (context dependent)"},
	{Phrase: "remote position", Weight: 5, Description: "Remote work mention (low risk)"},
	{Phrase: "freelance", Weight: 5, Description: "Freelance work (low risk)"},

	// Phishing/malware indicators
	{Phrase: "click here", Weight: 15, Description: "Suspicious link request"},
	{Phrase: "download this", Weight: 20, Description: "Requests suspicious download"},
	{Phrase: "install app", Weight: 18, Description: "Requests to install app"},
	{Phrase: "enable javascript", Weight: 20, Description: "Requests enabling JavaScript"},
	{Phrase: "allow notifications", Weight: 15, Description: "Requests browser notifications"},
	{Phrase: "update your profile", Weight: 18, Description: "Fake profile update request"},
	{Phrase: "complete your application", Weight: 12, Description: "Vague application request"},

	// Tax & legal red flags
	{Phrase: "tax deductible", Weight: 12, Description: "Questionable tax claim"},
	{Phrase: "no taxes", Weight: 20, Description: "Claims to avoid taxes"},
	{Phrase: "under the table", Weight: 25, Description: "Cash/unreported work"},
	{Phrase: "off the books", Weight: 25, Description: "Unreported employment claim"},
	{Phrase: "legal disclaimer", Weight: 10, Description: "Vague legal disclaimer"},
	{Phrase: "not liable", Weight: 18, Description: "Liability waiver language"},

	// Adult content/inappropriate
	{Phrase: "dating site", Weight: 18, Description: "Dating/adult site relationship"},
	{Phrase: "adult chat", Weight: 25, Description: "Adult chat service"},
	{Phrase: "cam girl", Weight: 25, Description: "Adult cam work offer"},
	{Phrase: "escort", Weight: 25, Description: "Escort service offer"},
	{Phrase: "sugar daddy", Weight: 22, Description: "Sugar daddy arrangement"},

	// Blockchain/crypto red flags
	{Phrase: "smart contract", Weight: 20, Description: "Blockchain contract mention"},
	{Phrase: "defi", Weight: 18, Description: "DeFi platform involvement"},
	{Phrase: "yield farming", Weight: 22, Description: "Yield farming scheme"},
	{Phrase: "staking", Weight: 15, Description: "Cryptocurrency staking"},
	{Phrase: "launchpad", Weight: 18, Description: "Token launchpad scheme"},
	{Phrase: "mining", Weight: 15, Description: "Cryptocurrency mining claim"},
	{Phrase: "token airdrop", Weight: 20, Description: "Free token airdrop"},

	// Poor English/professionalism
	{Phrase: "grammer", Weight: 8, Description: "Likely intentional misspelling"},
	{Phrase: "u r", Weight: 10, Description: "Text speak language"},
	{Phrase: "4 u", Weight: 10, Description: "Numerical text speak"},
	{Phrase: "thanx", Weight: 8, Description: "Casual misspelling"},
	{Phrase: "yall", Weight: 5, Description: "Casual southern dialect"},
	{Phrase: "aksed", Weight: 8, Description: "Common misspelling (asked)"},

	// Duplicate/copy-paste language
	{Phrase: "this message was sent", Weight: 10, Description: "Mass message indicator"},
	{Phrase: "if interested", Weight: 8, Description: "Generic follow-up language"},
	{Phrase: "feel free", Weight: 5, Description: "Generic polite language"},
	{Phrase: "let me know", Weight: 3, Description: "Generic closing language"},
	{Phrase: "best regards", Weight: 3, Description: "Generic professional closing"},
	{Phrase: "yours truly", Weight: 4, Description: "Formal generic closing"},

	// Inconsistent contact info
	{Phrase: "gmail", Weight: 5, Description: "Gmail used for business (context dependent)"},
	{Phrase: "yahoo", Weight: 5, Description: "Yahoo email (outdated but low risk)"},
	{Phrase: "@gmail.com", Weight: 5, Description: "Gmail business email (low risk)"},
	{Phrase: "no public email", Weight: 12, Description: "Refuses public contact"},
	{Phrase: "private contact only", Weight: 15, Description: "Only private contact allowed"},
	{Phrase: "use my personal", Weight: 12, Description: "Directs to personal contact"},

	// Timeframe red flags
	{Phrase: "just started", Weight: 10, Description: "Recently created opportunity"},
	{Phrase: "brand new", Weight: 8, Description: "New business/opportunity"},
	{Phrase: "opening soon", Weight: 8, Description: "Opening announcement"},
	{Phrase: "closes soon", Weight: 12, Description: "Artificial deadline"},
	{Phrase: "one time offer", Weight: 15, Description: "Limited-time sole offer"},

	// Generic role descriptions
	{Phrase: "manager", Weight: 3, Description: "Generic manager role (very low risk)"},
	{Phrase: "coordinator", Weight: 3, Description: "Coordinator role (very low risk)"},
	{Phrase: "analyst", Weight: 3, Description: "Analyst role (very low risk)"},
	{Phrase: "specialist", Weight: 3, Description: "Specialist role (very low risk)"},
	{Phrase: "consultant", Weight: 5, Description: "Generic consultant role"},
	{Phrase: "advisor", Weight: 5, Description: "Generic advisor role"},
	{Phrase: "representative", Weight: 5, Description: "Generic representative role"},
}

// DefaultPatterns returns a copy of the built-in phrase table.
func DefaultPatterns() []Pattern {
	out := make([]Pattern, len(defaultPatterns))
	copy(out, defaultPatterns[:])
	return out
}
