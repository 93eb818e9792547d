package entity

// Style identifies a menu display style chosen by the shop owner.
type Style string

// The fixed set of display styles.
const (
	StyleColorful       Style = "Colorful"
	StyleIllustrational Style = "Illustrational"
	StyleMinimalistic   Style = "Minimalistic"
)

// StyleConfig holds the display constants for one style: the three theme
// colors, the three fonts (heading, body, accent) and the backdrop image.
type StyleConfig struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
	Color3 string `json:"color3"`
	Font1  string `json:"font1"`
	Font2  string `json:"font2"`
	Font3  string `json:"font3"`
	Image  string `json:"image"`
}

// styleConfigs maps each style to its display constants.
var styleConfigs = map[Style]StyleConfig{
	StyleColorful: {
		Color1: "#D2042D",
		Color2: "#00D621",
		Color3: "#92ACAC",
		Font1:  "libre-caslon-display-regular",
		Font2:  "baskervville",
		Font3:  "caudex-regular",
		Image:  "/static/img_1.jpg",
	},
	StyleIllustrational: {
		Color1: "#EBDDC3",
		Color2: "#D67BA8",
		Color3: "#005f69",
		Font1:  "shrikhand-regular",
		Font2:  "titan-one-regular",
		Font3:  "sour-gummy",
		Image:  "/static/img_2.jpg",
	},
	StyleMinimalistic: {
		Color1: "#FFDE21",
		Color2: "#FFEA99",
		Color3: "#3b3b3b",
		Font1:  "libre-caslon-display-regular",
		Font2:  "monserrat",
		Font3:  "bungee-hairline-regular",
		Image:  "/static/img_3.jpg",
	},
}

// Valid reports whether s is one of the fixed display styles.
func (s Style) Valid() bool {
	_, ok := styleConfigs[s]
	return ok
}

// Config returns the display constants for the style.
// The boolean is false for unknown styles.
func (s Style) Config() (StyleConfig, bool) {
	cfg, ok := styleConfigs[s]
	return cfg, ok
}
