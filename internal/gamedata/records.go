package gamedata

// Character is an entry of character_table
type Character struct {
	ID          string
	Name        string
	Appellation string
	Description string
	Profession  string
	Position    string
	SkillIDs    []string
}

// OperatorFile is an operator's handbook entry with the operator display name
type OperatorFile struct {
	Name     string
	CharID   string
	DrawName string
	InfoName string
	Stories  []*Story
}

// Story is one titled section of an operator file
type Story struct {
	Title    string
	Segments []string
}

// OperatorAudio holds every voice line of an operator in table order
type OperatorAudio struct {
	Name  string
	Lines []*VoiceLine
}

// VoiceLine is an entry of charword_table
type VoiceLine struct {
	CharID string
	Title  string
	Text   string
	Asset  string
}

// Skin is an entry of skin_table. Display attributes are nil when the table holds null.
type Skin struct {
	SkinID     string
	CharID     string
	PortraitID string
	Display    *DisplaySkin
}

// DisplaySkin is the displaySkin object of a skin entry
type DisplaySkin struct {
	SkinName       *string
	ModelName      *string
	DrawerName     *string
	SkinGroupName  *string
	Content        *string
	Dialog         *string
	Usage          *string
	Description    *string
	ObtainApproach *string
}

// Skill is the top level of a skill_table entry
type Skill struct {
	ID          string
	Name        string
	Description string
	Levels      int
}
