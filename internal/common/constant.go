package common

// Keys of the client key-value stores. They mirror the storage layout the
// recipe front-end has always used, so exported data stays interchangeable.
const (
	// RecipesKey holds the JSON array of recipe records (durable store).
	RecipesKey = "recipes"

	// LoggedInUserKey holds the session identifier (durable store).
	LoggedInUserKey = "loggedInUser"

	// DraftKey holds the staged, not yet submitted recipe (session store).
	DraftKey = "tempRecipe"
)
