package catalog

// accountFields is sorted by field number.
var accountFields = []Field{
	{
		Number:      1,
		Mnemonic:    "number",
		Title:       "Account Number",
		Type:        Character,
		Length:      10,
		HelpFile:    "00001",
		Description: "This field stores the unique 10-digit account number assigned to the account when it was created.",
		Notes: "Includes any Account Prefix entered when the account was created. " +
			"The number cannot be revised here; use the Change Account Numbers batch program.",
	},
	{
		Number:       2,
		Mnemonic:     "type",
		Title:        "Account Type",
		Type:         Code,
		Length:       9999,
		HelpFile:     "00002",
		DefaultValue: "0",
		Description:  "This field stores the credit union-defined code to define the type of account.",
		Notes:        "Account types are named in the Account Type Names parameters.",
	},
	{
		Number:       7,
		Mnemonic:     "branch",
		Title:        "Branch",
		Type:         Code,
		Length:       9999,
		HelpFile:     "00007",
		DefaultValue: "0",
		Description:  "This field stores the credit union-defined branch number where the account was opened or is currently housed.",
		Notes: "**0** is the main branch; **1-9999** are branches defined in the Institution Branch Address parameters.\n\n" +
			"With branch accounting, share transactions post to this branch.",
	},
	{
		Number:         8,
		Mnemonic:       "restrict",
		Title:          "Restricted Access",
		Type:           Code,
		Length:         6,
		HelpFile:       "00008",
		DefaultControl: true,
		DefaultValue:   "0",
		Description:    "This field stores a code that indicates the type of restriction if access is restricted on this account.",
		Notes: "**(0)** Normal  \n" +
			"**(1)** Restricted  \n" +
			"**(2)** Sensitive  \n" +
			"**(3)** Employee  \n" +
			"**(4)** Employee Family  \n" +
			"**(5)** Employee Sensitive  \n" +
			"**(6)** Employee Sensitive Family",
	},
	{
		Number:         20,
		Mnemonic:       "membergroup",
		Title:          "Member Group",
		Type:           Code,
		Length:         9999,
		HelpFile:       "00020",
		DefaultControl: true,
		DefaultValue:   "0",
		Description:    "This field stores the credit union-defined code to identify the group to which the member belongs.",
		Notes:          "Member groups are named in the Member Group Descriptions parameters.",
	},
}
