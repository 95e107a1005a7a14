package run

import (
	"os"

	"github.com/xhd2015/searchfield/data"
	"github.com/xhd2015/searchfield/models"
)

const PlaceholderEnv = "SEARCHFIELD_PLACEHOLDER"

// HostConfig holds the host settings after defaults are applied
type HostConfig struct {
	Placeholder string
	ItemsFile   string
}

// ApplyConfigDefaults loads saved config and applies it where the
// command line left values empty
func ApplyConfigDefaults(placeholder, itemsFile string) (HostConfig, error) {
	savedConfig, err := data.LoadConfig()
	if err != nil {
		return HostConfig{}, err
	}
	return applyDefaults(placeholder, itemsFile, savedConfig), nil
}

// applyDefaults: flag, then saved config, then environment.
// An empty placeholder is left for the field's own default.
func applyDefaults(placeholder, itemsFile string, savedConfig *models.Config) HostConfig {
	if placeholder == "" && savedConfig != nil && savedConfig.Placeholder != "" {
		placeholder = savedConfig.Placeholder
	}
	if itemsFile == "" && savedConfig != nil && savedConfig.ItemsFile != "" {
		itemsFile = savedConfig.ItemsFile
	}
	if placeholder == "" {
		placeholder = os.Getenv(PlaceholderEnv)
	}
	return HostConfig{
		Placeholder: placeholder,
		ItemsFile:   itemsFile,
	}
}

var defaultItems = []string{
	"Abyssinian",
	"Bengal",
	"British Shorthair",
	"Maine Coon",
	"Norwegian Forest cat",
	"Persian",
	"Ragdoll",
	"Russian Blue",
	"Scottish Fold",
	"Siamese",
	"Sphynx",
	"Border Collie",
	"Dachshund",
	"Golden Retriever",
	"Shiba Inu",
}

func loadItems(itemsFile string) ([]string, error) {
	if itemsFile == "" {
		return defaultItems, nil
	}
	return data.LoadItems(itemsFile)
}
