package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mtlprog/giftideas/internal/model"
)

// File is the optional TOML configuration file.
//
//	api_url = "https://christmas-gift-ideas.vercel.app/api"
//
//	[defaults]
//	gender = "woman"
//	age = 30
//	price_min = 20
//	price_max = 80
//	hobbies = "reading"
type File struct {
	APIURL   string       `toml:"api_url"`
	Defaults FormDefaults `toml:"defaults"`
}

// FormDefaults overrides the initial form values. Zero values keep the built-in defaults.
type FormDefaults struct {
	Gender   string `toml:"gender"`
	Age      *int   `toml:"age"`
	PriceMin *int   `toml:"price_min"`
	PriceMax *int   `toml:"price_max"`
	Hobbies  string `toml:"hobbies"`
}

// LoadFile reads the TOML file at path. An empty path returns an empty File.
func LoadFile(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read config file: %w", err)
	}

	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return f, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return f, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if f.Defaults.Gender != "" {
		if _, ok := model.ParseGender(f.Defaults.Gender); !ok {
			return f, fmt.Errorf("invalid default gender %q", f.Defaults.Gender)
		}
	}
	for name, v := range map[string]*int{
		"age":       f.Defaults.Age,
		"price_min": f.Defaults.PriceMin,
		"price_max": f.Defaults.PriceMax,
	} {
		if v != nil && *v < 0 {
			return f, errors.New("default " + name + " must not be negative")
		}
	}

	return f, nil
}

// DefaultForm returns the built-in initial form values.
func DefaultForm() model.FormInput {
	return model.FormInput{
		Gender:   model.Gender(DefaultGender),
		Age:      DefaultAge,
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
	}
}

// Form returns the initial form values with the file's overrides applied.
func (f File) Form() model.FormInput {
	form := DefaultForm()
	d := f.Defaults

	if g, ok := model.ParseGender(d.Gender); ok {
		form.Gender = g
	}
	if d.Age != nil {
		form.Age = *d.Age
	}
	if d.PriceMin != nil {
		form.PriceMin = *d.PriceMin
	}
	if d.PriceMax != nil {
		form.PriceMax = *d.PriceMax
	}
	if d.Hobbies != "" {
		form.Hobbies = d.Hobbies
	}
	return form
}
