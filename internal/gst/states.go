package gst

import "strings"

// StateInfo is a GST state/union territory.
type StateInfo struct {
	Name string `json:"state"`
	Code string `json:"code"`
}

// stateCodes maps the two-digit GSTIN prefix to its state. Code 25 has no state assigned.
var stateCodes = map[string]StateInfo{
	"01": {Name: "Jammu and Kashmir", Code: "01"},
	"02": {Name: "Himachal Pradesh", Code: "02"},
	"03": {Name: "Punjab", Code: "03"},
	"04": {Name: "Chandigarh", Code: "04"},
	"05": {Name: "Uttarakhand", Code: "05"},
	"06": {Name: "Haryana", Code: "06"},
	"07": {Name: "Delhi", Code: "07"},
	"08": {Name: "Rajasthan", Code: "08"},
	"09": {Name: "Uttar Pradesh", Code: "09"},
	"10": {Name: "Bihar", Code: "10"},
	"11": {Name: "Sikkim", Code: "11"},
	"12": {Name: "Arunachal Pradesh", Code: "12"},
	"13": {Name: "Nagaland", Code: "13"},
	"14": {Name: "Manipur", Code: "14"},
	"15": {Name: "Mizoram", Code: "15"},
	"16": {Name: "Tripura", Code: "16"},
	"17": {Name: "Meghalaya", Code: "17"},
	"18": {Name: "Assam", Code: "18"},
	"19": {Name: "West Bengal", Code: "19"},
	"20": {Name: "Jharkhand", Code: "20"},
	"21": {Name: "Odisha", Code: "21"},
	"22": {Name: "Chhattisgarh", Code: "22"},
	"23": {Name: "Madhya Pradesh", Code: "23"},
	"24": {Name: "Gujarat", Code: "24"},
	"26": {Name: "Dadra and Nagar Haveli and Daman and Diu", Code: "26"},
	"27": {Name: "Maharashtra", Code: "27"},
	"29": {Name: "Karnataka", Code: "29"},
	"30": {Name: "Goa", Code: "30"},
	"31": {Name: "Lakshadweep", Code: "31"},
	"32": {Name: "Kerala", Code: "32"},
	"33": {Name: "Tamil Nadu", Code: "33"},
	"34": {Name: "Puducherry", Code: "34"},
	"35": {Name: "Andaman and Nicobar Islands", Code: "35"},
	"36": {Name: "Telangana", Code: "36"},
	"37": {Name: "Andhra Pradesh", Code: "37"},
	"38": {Name: "Ladakh", Code: "38"},
	"97": {Name: "Other Territory", Code: "97"},
}

// StateFromGSTIN resolves the registrant's state from the first two characters of a GSTIN.
func StateFromGSTIN(gstin string) (StateInfo, bool) {
	gstin = strings.TrimSpace(gstin)
	if len(gstin) < 2 {
		return StateInfo{}, false
	}
	s, ok := stateCodes[gstin[:2]]
	return s, ok
}

// StateByCode returns the state for a two-digit code.
func StateByCode(code string) (StateInfo, bool) {
	s, ok := stateCodes[code]
	return s, ok
}

// StateByName looks a state up by name, ignoring case and surrounding space.
func StateByName(name string) (StateInfo, bool) {
	name = strings.TrimSpace(name)
	for _, s := range stateCodes {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return StateInfo{}, false
}
