package boolde

// Symbol names a modelled or forcing variable. It should be unique within a
// Model's variables and unique, separately, within its forcing inputs.
type Symbol string
