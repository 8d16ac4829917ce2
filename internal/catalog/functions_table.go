package catalog

// functions is sorted by name.
var functions = []Function{
	{
		Name:    "ABS",
		Snippet: "ABS(${1:expression})$0",
		Doc:     "This function returns the absolute value of an expression.",
	},
	{
		Name:    "ANYSERVICE",
		Snippet: "ANYSERVICE(${1|SHARE,LOAN,CARD,EXTERNALLOAN|},${2:<1-99>})$0",
		Doc:     "This function evaluates to Boolean TRUE if the particular service code exists on the specified record.",
	},
	{
		Name:    "ANYWARNING",
		Snippet: "ANYWARNING(${1|ACCOUNT,SHARE,LOAN,CARD,EXTERNALLOAN|},${2:<1-999>})$0",
		Doc:     "This function evaluates to Boolean TRUE if a particular warning code exists on the specified record.",
	},
	{
		Name:    "CAPITALIZE",
		Snippet: "CAPITALIZE(${1:CharacterExpression})$0",
		Doc:     "This function translates the first character of each word to uppercase and translates all other alphabetic characters to lowercase.",
	},
	{
		Name:    "CHARACTERREAD",
		Snippet: "CHARACTERREAD(\"${1:Prompt}\")$0",
		Doc:     "Displays a prompt on the user's console and returns the character string entered by the user",
	},
	{
		Name:    "CHARACTERSEARCH",
		Snippet: "CHARACTERSEARCH(${1:ExpressionToSearchWithin},${2:ExpressionToSearchFor})$0",
		Doc:     "This function returns the position of the first occurrence of one character sequence within another character sequence.",
	},
	{
		Name:    "CHRVALUE",
		Snippet: "CHRVALUE(${1:Character})$0",
		Doc:     "This function returns the numeric decimal ASCII value of a single character.",
	},
	{
		Name:    "CODEREAD",
		Snippet: "CODEREAD(\"${1:Prompt}\")$0",
		Doc:     "Displays the specified prompt on the operator's console, waits for a code response, and returns operator's response as the value of CODEREAD.",
	},
	{
		Name:    "COL",
		Snippet: "COL=${1:X} $0",
		Doc:     "This function specifies which column should contain output information.",
	},
	{
		Name:    "COPYAPP",
		Snippet: "COPYAPP(${1:SourceAppID},${2:DestAcct},${3:DestAppID},${4:MoveFlag},${5:PersonFlag},${6:FinFlag},${7:TrackingFlag},${8:NoteFlag},${9:PreferenceFlag},${10:CBIFlag},${11:ErrorText})$0",
		Doc:     "This function copies or moves fields from an Application record and its child records from one ID on an account to another ID on the same or different account. In addition, you can copy or move associated Credit Report record fields and their child records at the same time an Application is copied or moved.",
	},
	{
		Name:    "CREATEFINANCEFROMCREDREP",
		Snippet: "CREATEFINANCEFROMCREDREP(${1:CheckPrivsFlag},${2:AppID},${3:CreditReportLocator},${4:SkipBlankDescriptionFlag},${5:SkipZeroBalanceFlag},${6:ErrorText})$0",
		Doc:     "This function creates Finance records for a loan application based on trade items in a credit report.",
	},
	{
		Name:    "CTRLCHR",
		Snippet: "CTRLCHR(${1:expression})$0",
		Doc:     "This function lets you send non-printing control characters to a laser printer to take advantage of special features such as fonts, bold type, and boxes.",
	},
	{
		Name:    "DATASIZE",
		Snippet: "DATASIZE=${1:<1-132>} ${2:expression} $0",
		Doc:     "This function populates the data file report generated from a DATAFILE specfile.",
	},
	{
		Name:    "DATE",
		Snippet: "DATE(${1:MonthExpression},${2:DayExpression},${3:YearExpression}) $0",
		Doc:     "This function converts a series of three numeric expressions into a single date value",
	},
	{
		Name:    "DATEOFFSET",
		Snippet: "DATEOFFSET(${1:StartDate},${2:MonthCount},${3:DayCount},${4:YearCount})$0",
		Doc:     "This function returns a date value that is offset from the specified date value by the specified number of months, days, and years.",
	},
	{
		Name:    "DATEREAD",
		Snippet: "DATEREAD(\"${1:Prompt}\") $0",
		Doc:     "This function displays a prompt on the user's console and returns the date entered.",
	},
	{
		Name:    "DATEVALUE",
		Snippet: "DATEVALUE(${1:expression}) $0",
		Doc:     "This function converts dates stored as character data to the DATE data type.",
	},
	{
		Name:    "DAY",
		Snippet: "DAY(${1:DateExpression}) $0",
		Doc:     "This function returns the numerical value for the day in a date field or a date variable.",
	},
	{
		Name:    "DAYOFWEEK",
		Snippet: "DAYOFWEEK(${1:expression}) $0",
		Doc:     "This function returns a numeric value from 0-6 representing the day of the week for a date expression.",
	},
	{
		Name:    "DIALOGPROMPTCHAR",
		Snippet: "DIALOGPROMPTCHAR(\"${1:Prompt}\",${2:MaxLength},${3:Default}) $0",
		Doc:     "This function displays the text for a character data prompt in an interactive window.",
	},
	{
		Name:    "DIALOGPROMPTCODE",
		Snippet: "DIALOGPROMPTCODE(\"${1:Prompt}\",${2:MaxValue},${3:Default}) $0",
		Doc:     "This function displays the text for a code data prompt in an interactive window.",
	},
	{
		Name:    "DIALOGPROMPTCOMBOOPTION",
		Snippet: "DIALOGPROMPTCOMBOOPTION(${1:Value},${2:Text}) $0",
		Doc:     "This function adds options to a drop-down list of choices in an interactive window.",
	},
	{
		Name:    "DIALOGPROMPTCOMBOSTART",
		Snippet: "DIALOGPROMPTCOMBOSTART(\"${1:Prompt}\",${2:Default}) $0",
		Doc:     "This function indicates the beginning of a drop-down list of options in an interactive window.",
	},
	{
		Name:    "DIALOGPROMPTMONEY",
		Snippet: "DIALOGPROMPTMONEY(\"${1:Prompt}\",${2:Default}) $0",
		Doc:     "This function displays a prompt for the user to enter a value.",
	},
	{
		Name:    "DIALOGPROMPTNUMBER",
		Snippet: "DIALOGPROMPTNUMBER(\"${1:Prompt}\",${2:Default}) $0",
		Doc:     "This function displays a user prompt for a number.",
	},
	{
		Name:    "DIALOGPROMPTPASSWORD",
		Snippet: "DIALOGPROMPTPASSWORD(\"${1:Prompt}\",${2:MaxLength},${3:Default}) $0",
		Doc:     "This function displays a prompt for the user to enter a password.",
	},
	{
		Name:    "DIALOGPROMPTRATE",
		Snippet: "DIALOGPROMPTRATE(\"${1:Prompt}\",${2:Default}) $0",
		Doc:     "This function displays the text for a rate prompt in an interactive window.",
	},
	{
		Name:    "DIALOGPROMPTYESNO",
		Snippet: "DIALOGPROMPTYESNO(\"${1:Prompt}\",${2:Default}) $0",
		Doc:     "This function displays a drop-down list for a yes or no response in an interactive window.",
	},
	{
		Name:    "DIALOGSTART",
		Snippet: "DIALOGSTART(\"${1:DialogTitle}\",${2:WHRatio},${3|0,1|}) $0",
		Doc:     "This function initiates a new prompt and response sequence in an interactive window.",
	},
	{
		Name:    "DIALOGSTARTGROUPBOX",
		Snippet: "DIALOGSTARTGROUPBOX(\"${1:Text}\") $0",
		Doc:     "This function begins a group of prompts and responses in an interactive window.",
	},
	{
		Name:    "DIALOGTEXTLISTOPTION",
		Snippet: "DIALOGTEXTLISTOPTION(\"${1:Text}\") $0",
		Doc:     "This function adds options as lines of data in a read-only list box contained in a pop-up window.",
	},
	{
		Name:    "DIALOGTEXTLISTSTART",
		Snippet: "DIALOGTEXTLISTSTART(\"${1:Text}\") $0",
		Doc:     "This function indicates the beginning of a list box of read-only data lines contained in a pop-up window.",
	},
	{
		Name:    "DIM",
		Snippet: "DIM $0",
		Doc:     "This function returns the screen to normal display after characters are displayed with the BRIGHT command.",
	},
	{
		Name:    "DIVPROJECTINIT",
		Snippet: "DIVPROJECTINIT(${1|0,1,2|},${2:ParamDefaultType}) $0",
		Doc:     "This function initializes the setup variables required for performing annual percentage yield (APY) calculations and dividend projections.",
	},
	{
		Name:    "EMAILLINE",
		Snippet: "EMAILLINE(${1:EmailLine},${2:ErrorText}) $0",
		Doc:     "This function sends parameters or adds a line of text in an email message.",
	},
	{
		Name:    "EMAILSEND",
		Snippet: "EMAILSEND(${1:ErrorText}) $0",
		Doc:     "This function transmits an electronic message from within a specfile if your system is configured for email.",
	},
	{
		Name:    "EMAILSTART",
		Snippet: "EMAILSTART(${1:FromAddress},${2:ToAddress},${3:Subject},${4:ErrorText}) $0",
		Doc:     "This function initiates an email message if your system is configured for email.",
	},
	{
		Name:    "ENTERCHARACTER",
		Snippet: "ENTERCHARACTER(\"${1:Prompt}\",${2:MaxLength},${3:Default}) $0",
		Doc:     "This function displays a prompt on the user's console while running an on-demand specfile and waiting for a character response from the operator.",
	},
	{
		Name:    "ENTERCODE",
		Snippet: "ENTERCODE(\"${1:Prompt}\",${2:MaxValue},${3:Default}) $0",
		Doc:     "This function displays a prompt on the user's console and returns the code entered.",
	},
	{
		Name:    "ENTERDATE",
		Snippet: "ENTERDATE(\"${1:Prompt}\",${2:Default}) $0",
		Doc:     "This function displays a prompt on the user's console and returns the date entered.",
	},
	{
		Name:    "ENTERMONEY",
		Snippet: "ENTERMONEY(\"${1:Prompt}\",${2:Default}) $0",
		Doc:     "This function displays a prompt on the user's console and returns the monetary value entered.",
	},
	{
		Name:    "ENTERNUMBER",
		Snippet: "ENTERNUMBER(\"${1:Prompt}\",${2:MaxValue},${3:Default}) $0",
		Doc:     "This function displays a prompt on the user's console and returns the number entered.",
	},
	{
		Name:    "ENTERRATE",
		Snippet: "ENTERRATE(\"${1:Prompt}\",${2:Default}) $0",
		Doc:     "This function displays a prompt on the user's console and returns the rate entered.",
	},
	{
		Name:    "ENTERYESNO",
		Snippet: "ENTERYESNO(\"${1:Prompt}\",${2:Default}) $0",
		Doc:     "This function displays a prompt on the user's console and returns a Y (yes) or N (no) response.",
	},
	{
		Name:    "EXECUTE",
		Snippet: "EXECUTE(\"${1:SubroutineSpecfileName}\",${2:ErrorText}) $0",
		Doc:     "This function initiates the running of a subroutine specfile.",
	},
	{
		Name:    "EXP",
		Snippet: "EXP(${1:Expression}) $0",
		Doc:     "This function returns the value of the mathematical constant e raised to a specified power.",
	},
	{
		Name:    "FILEARCHIVEADD",
		Snippet: "FILEARCHIVEADD(${1:ArchiveType},${2:ArchiveName},${3:FileName},${4:ErrorText}) $0",
		Doc:     "This function adds a file to an archive.",
	},
	{
		Name:    "FILEARCHIVEEXTRACT",
		Snippet: "FILEARCHIVEEXTRACT(${1:ArchiveType},${2:ArchiveName},${3:DestinationFileType},${4:DestinationFileName},${5:ErrorText}) $0",
		Doc:     "This function retrieves a file from an archive.",
	},
	{
		Name:    "FILECLOSE",
		Snippet: "FILECLOSE(${1:FileNumber},${2:ErrorText}) $0",
		Doc:     "This function closes file identified in the first argument.",
	},
	{
		Name:    "FILECREATE",
		Snippet: "FILECREATE(${1:FileType},${2:FileName},${3:ErrorText}) $0",
		Doc:     "This function creates a new letter file, help file, PowerOn specfile, or edit file. Once the file is created, you must use the FILEOPEN function to access it.",
	},
	{
		Name:    "FILEDECRYPT",
		Snippet: "FILEDECRYPT(${1:FileType},${2:FileName},${3:DecryptedFileName},${4:KeyFileName},${5:ErrorText}) $0",
		Doc:     "This function decodes or deciphers files protected by encryption.",
	},
	{
		Name:    "FILEGETPOS",
		Snippet: "FILEGETPOS(${1:FileNumber},${2:FilePosition},${3:ErrorText}) $0",
		Doc:     "This function retrieves the current byte position in the text file just read from or written to.",
	},
	{
		Name:    "FILELISTCLOSE",
		Snippet: "FILELISTCLOSE(${1:ErrorText}) $0",
		Doc:     "This function closes a previously opened list of files.",
	},
	{
		Name:    "FILELISTOPEN",
		Snippet: "FILELISTOPEN(${1:FileType},${2:Template},${3:ErrorText}) $0",
		Doc:     "This function opens a file list you want to read.",
	},
	{
		Name:    "FILELISTREAD",
		Snippet: "FILELISTREAD(${1:FileName},${2:ErrorText}) $0",
		Doc:     "This function reads the next file name from a file list.",
	},
	{
		Name:    "FILEOPEN",
		Snippet: "FILEOPEN(${1:FileType},${2:FileName},${3:OpenMode},${4:FileNumber},${5:ErrorText}) $0",
		Doc:     "This function opens a file of the specified file type for processing in the selected open mode.",
	},
	{
		Name:    "FILEREAD",
		Snippet: "FILEREAD(${1:FileNumber},${2:NumberOfCharacters},${3:CharacterVariable},${4:ErrorText}) $0",
		Doc:     "This function reads an open file and saves the read data in a variable.",
	},
	{
		Name:    "FILEREADLINE",
		Snippet: "FILEREADLINE(${1:FileNumber},${2:TextLine},${3:ErrorText}) $0",
		Doc:     "This function reads a line of text from a file and then stores that line in the second argument.",
	},
	{
		Name:    "FILESETPOS",
		Snippet: "FILESETPOS(${1:FileNumber},${2:FilePosition},${3:ErrorText}) $0",
		Doc:     "This function sets the current byte position in the text file just read from or written to.",
	},
	{
		Name:    "FILEWRITE",
		Snippet: "FILEWRITE(${1:FileNumber},${2:Text},${3:ErrorText}) $0",
		Doc:     "This function writes the text in the second argument to the file identified in the first argument.",
	},
	{
		Name:    "FILEWRITELINE",
		Snippet: "FILEWRITELINE(${1:FileNumber},${2:CharacterData},${3:ErrorText}) $0",
		Doc:     "This function locates the file number specified and writes a line of text beginning at the current byte position.",
	},
	{
		Name:    "FLOAT",
		Snippet: "FLOAT(${1:Expression}) $0",
		Doc:     "This function converts a number, money, rate, date, or code value into its equivalent floating point value. It is intended for use on an entire numeric expression. It is useful for assigning a non-floating point value to a float variable. If you use this function on part of a compound expression, it can have unpredictable results.",
	},
	{
		Name:    "FLOATVALUE",
		Snippet: "FLOATVALUE(${1:CharacterString},${2:FLOATVARIABLE},${3:ErrorPosition}) $0",
		Doc:     "This function converts a character string to a floating point value. It is useful for assigning a non-floating point value to a float variable. If you use this function on part of a compound expression, it can have unpredictable results.",
	},
	{
		Name:    "FLOOR",
		Snippet: "FLOOR(${1:Expression}) $0",
		Doc:     "This function returns the largest integer less than or equal to the expression.",
	},
	{
		Name:    "FORMAT",
		Snippet: "FORMAT(${1:Expression},${2:FormatString}) $0",
		Doc:     "This function formats a numeric expression according to the format string specified in the second argument.",
	},
	{
		Name:    "FTPCLOSE",
		Snippet: "FTPCLOSE(${1:Handle},${2:ErrorText}) $0",
		Doc:     "This function closes an FTP session.",
	},
	{
		Name:    "FTPCMD",
		Snippet: "FTPCMD(${1:Handle},${2:Command},${3:ErrorText}) $0",
		Doc:     "This function sends a command directly to the FTP server and receives the response.",
	},
	{
		Name:    "FTPGET",
		Snippet: "FTPGET(${1:Handle},${2:SourceFileName},${3:DestFileType},${4:DestFileName},${5:ErrorText}) $0",
		Doc:     "This function retrieves a file from the FTP server.",
	},
	{
		Name:    "FTPLOGIN",
		Snippet: "FTPLOGIN(${1:Handle},${2:UserName},${3:Password},${4:ErrorText}) $0",
		Doc:     "This function logs in to an FTP server.",
	},
	{
		Name:    "FTPOPEN",
		Snippet: "FTPOPEN(${1:ServerName},${2:UserName},${3:Password},${4:ErrorText}) $0",
		Doc:     "This function opens an FTP session.",
	},
	{
		Name:    "FTPPUT",
		Snippet: "FTPPUT(${1:Handle},${2:SourceFileName},${3:DestFileName},${4:ErrorText}) $0",
		Doc:     "This function sends a file to the FTP server.",
	},
	{
		Name:    "FULLYEAR",
		Snippet: "FULLYEAR(${1:Expression}) $0",
		Doc:     "This function returns a numerical value (from 1900-2078) equivalent to the four-digit year in a date expression.",
	},
	{
		Name:    "GETDATACHAR",
		Snippet: "GETDATACHAR(${1:InfoCode},${2:Type1..4}) $0",
		Doc:     "This function instructs PowerOn to retrieve the current value of an accessible character field in the Parameter or Console file. GETDATACHAR and GETDATACHARACTER are equivalent keywords.",
	},
	{
		Name:    "GETDATADATE",
		Snippet: "GETDATADATE(${1:InfoCode},${2:Type1..4}) $0",
		Doc:     "This function retrieves the current value of an accessible date field in the Parameter or Console file.",
	},
	{
		Name:    "GETDATAMONEY",
		Snippet: "GETDATAMONEY(${1:InfoCode},${2:Type1..4}) $0",
		Doc:     "This function retrieves the current value of an accessible money field in the Parameter or Console file.",
	},
	{
		Name:    "GETDATANUMBER",
		Snippet: "GETDATANUMBER(${1:InfoCode},${2:Type1..4}) $0",
		Doc:     "This function retrieves the current value of an accessible numeric field in the Parameter or Console file.",
	},
	{
		Name:    "GETDATARATE",
		Snippet: "GETDATARATE(${1:InfoCode},${2:Type1..4}) $0",
		Doc:     "This function retrieves the current value of an accessible rate field in the Parameter or Console file.",
	},
	{
		Name:    "GETFIELDDATAMAX",
		Snippet: "GETFIELDDATAMAX(${1:RecordNumber},${2:FieldNumber},${3:SubfieldNumber}) $0",
		Doc:     "Takes a record number or integer expression, field number or integer expression, and subfield number or integer expression and returns the corresponding numeric maximum value. Pass 0 for the subfield number if not required. If any of the passed values are invalid, this function returns 0.",
	},
	{
		Name:    "GETFIELDDATATYPE",
		Snippet: "GETFIELDDATATYPE(${1:RecordNumber},${2:FieldNumber},${3:SubfieldNumber}) $0",
		Doc:     "Takes a record number or integer expression, field number or integer expression, and subfield number or integer expression and returns the corresponding numeric data type. Pass 0 for the subfield number if not required. If any of the passed values are invalid, this function returns 0.",
	},
	{
		Name:    "GETFIELDHELPFILE",
		Snippet: "GETFIELDHELPFILE(${1:RecordNumber},${2:FieldNumber},${3:SubfieldNumber}) $0",
		Doc:     "Takes a record number or integer expression, field number or integer expression, and subfield number or integer expression and returns the corresponding numeric help file number. Pass 0 for the subfield number if not required. If any of the passed values are invalid, this function returns 0.",
	},
	{
		Name:    "GETFIELDMNEMONIC",
		Snippet: "GETFIELDMNEMONIC(${1:RecordNumber},${2:FieldNumber},${3:SubfieldNumber}) $0",
		Doc:     "Takes a record number or integer expression and a field number or integer expression, and returns the corresponding field mnemonic. Use this function to obtain the field mnemonic for a particular field. The field mnemonic is required for all the other GETFIELD functions. If any of the passed values are invalid, this function returns a null string.",
	},
	{
		Name:    "GETFIELDNAME",
		Snippet: "GETFIELDNAME(${1:RecordNumber},${2:FieldNumber},${3:SubfieldNumber}) $0",
		Doc:     "Takes a record number or integer expression and a field mnemonic or character expression, and returns the corresponding field number. Use this function to obtain the field number for a particular field. The field number is required for all the other GETFIELD functions. If any of the passed values are invalid, this function returns 0.",
	},
	{
		Name:    "GETFIELDNUMBER",
		Snippet: "GETFIELDNUMBER(${1:RecordNumber},${2:FieldMnemonic}) $0",
		Doc:     "Takes a record number or integer expression and a field mnemonic or character expression, and returns the corresponding field number. Use this function to obtain the field number for a particular field. The field number is required for all the other GETFIELD functions. If any of the passed values are invalid, this function returns 0.",
	},
	{
		Name:    "HEADER",
		Snippet: "HEADER=\"${1:Expression}\" $0",
		Doc:     "This function defines a single line of column headings and their horizontal placement for PowerOn.",
	},
	{
		Name:    "HEADERS",
		Snippet: "HEADERS\n\t$0\nEND",
		Doc:     "This function marks the beginning of a subsection of output and precedes print statements that create column headings for that subsection.",
	},
	{
		Name:    "HOUR",
		Snippet: "HOUR(${1:Expression}) $0",
		Doc:     "This function returns the numerical value (from 00-23) equivalent to the hour stored in HHMM format.",
	},
	{
		Name:    "HPBOXDRAW",
		Snippet: "HPBOXDRAW(${1:X1},${2:Y1},${3:X2},${4:Y2},${5:BoxType},${6:BoxStyle}) $0",
		Doc:     "This function draws a box on the screen.",
	},
	{
		Name:    "HPDESC",
		Snippet: "HPDESC(${1:Expression}) $0",
		Doc:     "This function returns the description of the specified help file number.",
	},
	{
		Name:    "HPFONT",
		Snippet: "HPFONT(${1:FontNumber},${2:PointSize}) $0",
		Doc:     "This function changes the type font and point size on a laser printer.",
	},
	{
		Name:    "HPLINEDRAW",
		Snippet: "HPLINEDRAW(${1:X1},${2:Y1},${3:X2},${4:Y2},${5:Width}) $0",
		Doc:     "This function commands a laser printer to draw a line of specified width between given coordinates.",
	},
	{
		Name:    "HPLINESPERINCH",
		Snippet: "HPLINESPERINCH(${1:LinesPerInch}) $0",
		Doc:     "This function commands a laser printer to change the number of lines of text that can fit into a vertical inch of space on the page.",
	},
	{
		Name:    "HPRESET",
		Snippet: "HPRESET $0",
		Doc:     "This function resets the laser printer to its default settings.",
	},
	{
		Name:    "HPSETUP",
		Snippet: "HPSETUP(${1:PageSize},${2:Orientation}) $0",
		Doc:     "This function changes the printer page size (letter or legal) and print orientation (portrait or landscape).",
	},
	{
		Name:    "HPUNDERLINE",
		Snippet: "HPUNDERLINE(${1:Mode}) $0",
		Doc:     "This function controls the underline function of the laser printer.",
	},
	{
		Name:    "HPXPOS",
		Snippet: "HPXPOS(${1:Xposition}) $0",
		Doc:     "This function positions a laser printer at a specific horizontal axis coordinate.",
	},
	{
		Name:    "HPYPOS",
		Snippet: "HPYPOS(${1:Yposition}) $0",
		Doc:     "This function positions a laser printer at a specific vertical axis coordinate.",
	},
	{
		Name:    "HTMLVIEWDISPLAY",
		Snippet: "HTMLVIEWDISPLAY $0",
		Doc:     "This function displays information in a view window using HTML commands.",
	},
	{
		Name:    "HTMLVIEWLINE",
		Snippet: "HTMLVIEWLINE(\"${1:HTMLline}\") $0",
		Doc:     "This function allows you to enter a line of HTML code to create information in a view window.",
	},
	{
		Name:    "HTMLVIEWOPEN",
		Snippet: "HTMLVIEWOPEN(${1|0|1}) $0",
		Doc:     "This function opens an HTML view window.",
	},
	{
		Name:    "INITCREDITREPORT",
		Snippet: "INITCREDITREPORT(${1:SourceType}) $0",
		Doc:     "This function initializes the Credit Retrieval System setup variables that are required for pulling reports from Equifax, Experian, TransUnion, and the ChexSystems suite.",
	},
	{
		Name:    "INT",
		Snippet: "INT(${1:Expression}) $0",
		Doc:     "This function returns the integer part of a given number, monetary amount, or floating point expression.",
	},
	{
		Name:    "LENGTH",
		Snippet: "LENGTH(${1:Expression}) $0",
		Doc:     "This function returns the number of characters in a character string.",
	},
	{
		Name:    "LOANPROJECTINIT",
		Snippet: "LOANPROJECTINIT(${1:DataSource},${2:ParameterDefaultType}) $0",
		Doc:     "This function initializes the special setup variables required to perform loan projection calculations.",
	},
	{
		Name:    "LOG",
		Snippet: "LOG(${1:Expression}) $0",
		Doc:     "This function returns the natural logarithm of a specified number, code, or floating point value.",
	},
	{
		Name:    "LOWERCASE",
		Snippet: "LOWERCASE(${1:Expression}) $0",
		Doc:     "This function converts the alphabetic characters of a character expression to lowercase letters.",
	},
	{
		Name:    "MD5HASH",
		Snippet: "MD5HASH(${1:StringToHash}) $0",
		Doc:     "This function is used with the PASSWORDHASH function to encrypt audio access codes and home banking passwords.",
	},
	{
		Name:    "MINUTE",
		Snippet: "MINUTE(${1:Expression}) $0",
		Doc:     "This function returns the minute value (from 0 to 59) of a specified time.",
	},
	{
		Name:    "MOD",
		Snippet: "MOD(${1:Dividend},${2:Divisor}) $0",
		Doc:     "This function returns the remainder of a division operation.",
	},
	{
		Name:    "MONEY",
		Snippet: "MONEY(${1:Expression}) $0",
		Doc:     "This function converts a number, code, float, or rate value into a monetary value that can be assigned to a variable type number or can be printed. It is intended for use on an entire numeric expression. If you use it on part of a compound expression, it can have unpredictable results.",
	},
	{
		Name:    "MONEYREAD",
		Snippet: "MONEYREAD(\"${1:Prompt}\")$0",
		Doc:     "This function displays a prompt on the user's console and returns the money response.",
	},
	{
		Name:    "MONTH",
		Snippet: "MONTH(${1:Expression}) $0",
		Doc:     "This function returns a numeric value from 01 through 12 (January through December).",
	},
	{
		Name:    "NUMBER",
		Snippet: "NUMBER(${1:Expression}) $0",
	},
	{
		Name:    "NUMBERREAD",
		Snippet: "NUMBERREAD(\"${1:Prompt}\")$0",
		Doc:     "This function displays a prompt on the user's console and returns the numeric response.",
	},
	{
		Name:    "OUTPUTCLOSE",
		Snippet: "OUTPUTCLOSE(${1:OutputName}) $0",
	},
	{
		Name:    "OUTPUTOPEN",
		Snippet: "OUTPUTOPEN(${1:DeviceType},${2:PrinterNumber},${3:Title},${4:ReportCategory},${5:OutputChannel},${6:ErrorText}) $0",
		Doc:     "This function opens the specified output destination, and then all subsequent output is sent to that destination.",
	},
	{
		Name:    "OUTPUTSWITCH",
		Snippet: "OUTPUTSWITCH(${1:OutputChannel},${2:ErrorText})$0",
		Doc:     "This function changes all subsequent output to a different output destination.",
	},
	{
		Name:    "PASSWORDHASH",
		Snippet: "PASSWORDHASH(${1:Expression}) $0",
		Doc:     "This function encrypts access codes and home banking passwords.",
	},
	{
		Name:    "POPUPMESSAGE",
		Snippet: "POPUPMESSAGE(${1:0},${2:Message})$0",
		Doc:     "This function displays a message in a pop-up window on the user's console.",
	},
	{
		Name:    "PRINT",
		Snippet: "PRINT(${1:Expression}) $0",
	},
	{
		Name:    "PULLCREDITREPORT",
		Snippet: "PULLCREDITREPORT(${1:CreditBureau},${2:CreditReport}) $0",
		Doc:     "This function pulls a credit report from a credit bureau.",
	},
	{
		Name:    "PWR",
		Snippet: "PWR(${1:Expression}) $0",
	},
}
