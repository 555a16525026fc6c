package category

// FallbackSlug is the sink for transactions nothing could categorize. The
// seed must always contain it.
const FallbackSlug = "other-uncategorized"

type SeedDefinition struct {
	Name     string
	Slug     string
	Icon     string
	Color    string
	Children []SeedDefinition
}

// SystemCategories is the shared category forest seeded into every
// deployment.
var SystemCategories = []SeedDefinition{
	{
		Name: "Food & Dining", Slug: "food", Icon: "🍔", Color: "#FF6B6B",
		Children: []SeedDefinition{
			{Name: "Restaurants", Slug: "food-restaurants", Icon: "🍽️", Color: "#FF6B6B"},
			{Name: "Food Delivery", Slug: "food-delivery", Icon: "🛵", Color: "#FF8E72"},
			{Name: "Groceries", Slug: "food-groceries", Icon: "🛒", Color: "#FF9A8B"},
			{Name: "Late Night Food", Slug: "food-late-night", Icon: "🌙", Color: "#E55A4E"},
			{Name: "Cafe & Coffee", Slug: "food-cafe", Icon: "☕", Color: "#C9A66B"},
		},
	},
	{
		Name: "Transport", Slug: "transport", Icon: "🚗", Color: "#4ECDC4",
		Children: []SeedDefinition{
			{Name: "Ride Sharing", Slug: "transport-rideshare", Icon: "🚕", Color: "#4ECDC4"},
			{Name: "Public Transport", Slug: "transport-public", Icon: "🚇", Color: "#45B7AA"},
			{Name: "Fuel", Slug: "transport-fuel", Icon: "⛽", Color: "#3DA39C"},
			{Name: "Parking", Slug: "transport-parking", Icon: "🅿️", Color: "#359088"},
		},
	},
	{
		Name: "Shopping", Slug: "shopping", Icon: "🛍️", Color: "#A78BFA",
		Children: []SeedDefinition{
			{Name: "Online Shopping", Slug: "shopping-online", Icon: "📦", Color: "#A78BFA"},
			{Name: "Clothing", Slug: "shopping-clothing", Icon: "👕", Color: "#9575E8"},
			{Name: "Electronics", Slug: "shopping-electronics", Icon: "📱", Color: "#8360D6"},
			{Name: "Home & Living", Slug: "shopping-home", Icon: "🏠", Color: "#714BC4"},
		},
	},
	{
		Name: "Entertainment", Slug: "entertainment", Icon: "🎬", Color: "#F59E0B",
		Children: []SeedDefinition{
			{Name: "Movies & Shows", Slug: "entertainment-movies", Icon: "🎥", Color: "#F59E0B"},
			{Name: "Gaming", Slug: "entertainment-gaming", Icon: "🎮", Color: "#E68D00"},
			{Name: "Music & Concerts", Slug: "entertainment-music", Icon: "🎵", Color: "#D77D00"},
			{Name: "Sports", Slug: "entertainment-sports", Icon: "⚽", Color: "#C86D00"},
		},
	},
	{
		Name: "Bills & Utilities", Slug: "bills", Icon: "📄", Color: "#6366F1",
		Children: []SeedDefinition{
			{Name: "Electricity", Slug: "bills-electricity", Icon: "⚡", Color: "#6366F1"},
			{Name: "Water", Slug: "bills-water", Icon: "💧", Color: "#5558E3"},
			{Name: "Internet & Phone", Slug: "bills-internet", Icon: "📶", Color: "#474AD5"},
			{Name: "Gas", Slug: "bills-gas", Icon: "🔥", Color: "#393CC7"},
		},
	},
	{
		Name: "Subscriptions", Slug: "subscriptions", Icon: "🔄", Color: "#EC4899",
		Children: []SeedDefinition{
			{Name: "Streaming", Slug: "subscriptions-streaming", Icon: "📺", Color: "#EC4899"},
			{Name: "Software", Slug: "subscriptions-software", Icon: "💻", Color: "#DD3B8A"},
			{Name: "Memberships", Slug: "subscriptions-membership", Icon: "🎫", Color: "#CE2E7B"},
		},
	},
	{
		Name: "Health & Wellness", Slug: "health", Icon: "💊", Color: "#10B981",
		Children: []SeedDefinition{
			{Name: "Pharmacy", Slug: "health-pharmacy", Icon: "💉", Color: "#10B981"},
			{Name: "Doctor & Hospital", Slug: "health-doctor", Icon: "🏥", Color: "#0DA270"},
			{Name: "Fitness", Slug: "health-fitness", Icon: "🏋️", Color: "#0A8B5F"},
		},
	},
	{
		Name: "Money Transfer", Slug: "transfer", Icon: "💸", Color: "#3B82F6",
		Children: []SeedDefinition{
			{Name: "UPI Transfer", Slug: "transfer-upi", Icon: "📲", Color: "#3B82F6"},
			{Name: "Bank Transfer", Slug: "transfer-bank", Icon: "🏦", Color: "#2970E4"},
			{Name: "Wallet Top-up", Slug: "transfer-wallet", Icon: "👛", Color: "#175ED2"},
		},
	},
	{
		Name: "Income", Slug: "income", Icon: "💰", Color: "#22C55E",
		Children: []SeedDefinition{
			{Name: "Salary", Slug: "income-salary", Icon: "💵", Color: "#22C55E"},
			{Name: "Refund", Slug: "income-refund", Icon: "↩️", Color: "#1DB450"},
			{Name: "Cashback", Slug: "income-cashback", Icon: "🎁", Color: "#18A342"},
			{Name: "Interest", Slug: "income-interest", Icon: "📈", Color: "#139234"},
		},
	},
	{
		Name: "Other", Slug: "other", Icon: "📌", Color: "#6B7280",
		Children: []SeedDefinition{
			{Name: "ATM Withdrawal", Slug: "other-atm", Icon: "🏧", Color: "#6B7280"},
			{Name: "Fees & Charges", Slug: "other-fees", Icon: "💳", Color: "#5C636E"},
			{Name: "Uncategorized", Slug: FallbackSlug, Icon: "❓", Color: "#4D555C"},
		},
	},
}

// MerchantSeed maps a normalized merchant pattern to a seeded category.
type MerchantSeed struct {
	Pattern      string
	CategorySlug string
	Confidence   float64
}

var SeedMerchantMappings = []MerchantSeed{
	{Pattern: "SWIGGY", CategorySlug: "food-delivery", Confidence: 0.95},
	{Pattern: "ZOMATO", CategorySlug: "food-delivery", Confidence: 0.95},
	{Pattern: "DUNZO", CategorySlug: "food-delivery", Confidence: 0.90},
	{Pattern: "ZEPTO", CategorySlug: "food-groceries", Confidence: 0.90},
	{Pattern: "BLINKIT", CategorySlug: "food-groceries", Confidence: 0.90},
	{Pattern: "BIGBASKET", CategorySlug: "food-groceries", Confidence: 0.95},
	{Pattern: "INSTAMART", CategorySlug: "food-groceries", Confidence: 0.90},

	{Pattern: "STARBUCKS", CategorySlug: "food-cafe", Confidence: 0.95},
	{Pattern: "CCD", CategorySlug: "food-cafe", Confidence: 0.90},
	{Pattern: "CAFE COFFEE DAY", CategorySlug: "food-cafe", Confidence: 0.95},
	{Pattern: "THIRD WAVE", CategorySlug: "food-cafe", Confidence: 0.90},

	{Pattern: "UBER", CategorySlug: "transport-rideshare", Confidence: 0.95},
	{Pattern: "OLA", CategorySlug: "transport-rideshare", Confidence: 0.95},
	{Pattern: "RAPIDO", CategorySlug: "transport-rideshare", Confidence: 0.90},
	{Pattern: "METRO", CategorySlug: "transport-public", Confidence: 0.85},
	{Pattern: "INDIAN RAILWAYS", CategorySlug: "transport-public", Confidence: 0.95},
	{Pattern: "IRCTC", CategorySlug: "transport-public", Confidence: 0.95},
	{Pattern: "MAKEMYTRIP", CategorySlug: "transport-public", Confidence: 0.85},
	{Pattern: "HP PETROL", CategorySlug: "transport-fuel", Confidence: 0.95},
	{Pattern: "INDIAN OIL", CategorySlug: "transport-fuel", Confidence: 0.95},
	{Pattern: "BHARAT PETROLEUM", CategorySlug: "transport-fuel", Confidence: 0.95},

	{Pattern: "AMAZON", CategorySlug: "shopping-online", Confidence: 0.90},
	{Pattern: "FLIPKART", CategorySlug: "shopping-online", Confidence: 0.90},
	{Pattern: "MYNTRA", CategorySlug: "shopping-clothing", Confidence: 0.90},
	{Pattern: "AJIO", CategorySlug: "shopping-clothing", Confidence: 0.90},
	{Pattern: "NYKAA", CategorySlug: "shopping-online", Confidence: 0.85},
	{Pattern: "CROMA", CategorySlug: "shopping-electronics", Confidence: 0.90},
	{Pattern: "RELIANCE DIGITAL", CategorySlug: "shopping-electronics", Confidence: 0.90},
	{Pattern: "IKEA", CategorySlug: "shopping-home", Confidence: 0.95},

	{Pattern: "NETFLIX", CategorySlug: "subscriptions-streaming", Confidence: 0.95},
	{Pattern: "HOTSTAR", CategorySlug: "subscriptions-streaming", Confidence: 0.95},
	{Pattern: "PRIME VIDEO", CategorySlug: "subscriptions-streaming", Confidence: 0.95},
	{Pattern: "SPOTIFY", CategorySlug: "subscriptions-streaming", Confidence: 0.95},
	{Pattern: "YOUTUBE", CategorySlug: "subscriptions-streaming", Confidence: 0.90},
	{Pattern: "BOOKMYSHOW", CategorySlug: "entertainment-movies", Confidence: 0.95},
	{Pattern: "PVR", CategorySlug: "entertainment-movies", Confidence: 0.95},
	{Pattern: "INOX", CategorySlug: "entertainment-movies", Confidence: 0.95},

	{Pattern: "TATA POWER", CategorySlug: "bills-electricity", Confidence: 0.95},
	{Pattern: "BESCOM", CategorySlug: "bills-electricity", Confidence: 0.95},
	{Pattern: "BSNL", CategorySlug: "bills-internet", Confidence: 0.90},
	{Pattern: "JIO", CategorySlug: "bills-internet", Confidence: 0.85},
	{Pattern: "AIRTEL", CategorySlug: "bills-internet", Confidence: 0.85},
	{Pattern: "VI", CategorySlug: "bills-internet", Confidence: 0.80},
	{Pattern: "ACT FIBERNET", CategorySlug: "bills-internet", Confidence: 0.90},

	{Pattern: "APOLLO", CategorySlug: "health-pharmacy", Confidence: 0.85},
	{Pattern: "PHARMEASY", CategorySlug: "health-pharmacy", Confidence: 0.95},
	{Pattern: "NETMEDS", CategorySlug: "health-pharmacy", Confidence: 0.95},
	{Pattern: "1MG", CategorySlug: "health-pharmacy", Confidence: 0.95},
	{Pattern: "PRACTO", CategorySlug: "health-doctor", Confidence: 0.90},
	{Pattern: "CULT FIT", CategorySlug: "health-fitness", Confidence: 0.90},

	{Pattern: "GOOGLE", CategorySlug: "subscriptions-software", Confidence: 0.70},
	{Pattern: "APPLE", CategorySlug: "subscriptions-software", Confidence: 0.70},
	{Pattern: "MICROSOFT", CategorySlug: "subscriptions-software", Confidence: 0.80},

	{Pattern: "ATM", CategorySlug: "other-atm", Confidence: 0.95},
	{Pattern: "CASH WITHDRAWAL", CategorySlug: "other-atm", Confidence: 0.95},
}
