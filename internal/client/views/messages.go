package views

// Fixed user-facing messages.
const (
	MsgNoRecipes       = "No recipes found."
	MsgLoginToDelete   = "You must be logged in to delete a recipe!"
	MsgLoginToEdit     = "You must be logged in to edit a recipe!"
	MsgNotOwner        = "You can only change your own recipes."
	MsgFillAllFields   = "Please fill all fields."
	MsgRecipeAdded     = "Recipe added successfully!"
	MsgRecipeUpdated   = "Recipe updated successfully!"
	MsgRecipeNotFound  = "Recipe not found."
	MsgLoading         = "Loading..."
	MsgSomethingFailed = "Something went wrong. Please try again."
)
