package types

// Record is a name/version pair shown in the release list.
type Record struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

var androidReleases = [...]Record{
	{Name: "Cupcake", Version: "1.5"},
	{Name: "Donut", Version: "1.6"},
	{Name: "Eclair", Version: "2.0 - 2.1"},
	{Name: "Froyo", Version: "2.2 - 2.2.3"},
	{Name: "Gingerbread", Version: "2.3 - 2.3.7"},
	{Name: "Honeycomb", Version: "3.0 - 3.2.6"},
	{Name: "Ice Cream Sandwich", Version: "4.0 - 4.0.4"},
	{Name: "Jelly Bean", Version: "4.1 - 4.3.1"},
	{Name: "KitKat", Version: "4.4 - 4.4.4"},
	{Name: "Lollipop", Version: "5.0 - 5.1.1"},
	{Name: "Marshmallow", Version: "6.0 - 6.0.1"},
	{Name: "Nougat", Version: "7.0 - 7.1.2"},
	{Name: "Oreo", Version: "8.0 - 8.1"},
	{Name: "Pie", Version: "9"},
	{Name: "Android 10", Version: "10"},
	{Name: "Android 11", Version: "11"},
	{Name: "Android 12", Version: "12"},
	{Name: "Android 13", Version: "13"},
}

// AndroidReleases returns a fresh copy of the fixed, ordered release list.
func AndroidReleases() []Record {
	out := make([]Record, len(androidReleases))
	copy(out, androidReleases[:])
	return out
}
