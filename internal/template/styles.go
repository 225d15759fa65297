package template

// baseCSS is shared by all themes: page geometry, typography reset and the
// section skeleton. Theme overrides only recolor and reshape on top of it.
const baseCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
html { -webkit-print-color-adjust: exact; }
body {
  font-family: 'Helvetica Neue', Arial, sans-serif;
  font-size: 10.5pt;
  line-height: 1.45;
  color: #1f2430;
  background: #fff;
}
.resume { width: 100%; }
.header { margin-bottom: 18px; }
.header .name { font-size: 22pt; font-weight: 700; letter-spacing: 0.5px; }
.header .contact { margin-top: 4px; font-size: 9.5pt; color: #4a5160; }
.header .contact span + span::before { content: "\2022"; margin: 0 6px; color: #9aa1ad; }
.header .links { margin-top: 3px; font-size: 9.5pt; }
.header .links a { color: inherit; text-decoration: none; }
.header .links a + a { margin-left: 10px; }
.photo { width: 76px; height: 76px; border-radius: 50%; object-fit: cover; }
.section { margin-bottom: 14px; }
.section > h2 {
  font-size: 11pt;
  text-transform: uppercase;
  letter-spacing: 1.2px;
  margin-bottom: 6px;
  padding-bottom: 3px;
  border-bottom: 1px solid #d8dce3;
}
.entry { margin-bottom: 8px; }
.entry .title { font-weight: 600; }
.entry .where { color: #4a5160; }
.entry .when { font-size: 9pt; color: #6b7280; }
.entry .body { margin-top: 2px; }
.skills ul, .langs ul { list-style: none; }
.skills li, .langs li { display: inline-block; margin: 0 8px 4px 0; }
.sub h3 { font-size: 10pt; margin-bottom: 2px; }
.sub + .sub { margin-top: 6px; }
`

const modernCSS = `
.header { border-left: 4px solid #2563eb; padding-left: 14px; }
.header .name { color: #1e3a8a; }
.section > h2 { color: #2563eb; border-bottom-color: #2563eb; }
.skills li { background: #eff6ff; color: #1e40af; padding: 2px 8px; border-radius: 10px; }
a { color: #2563eb; }
`

const classicCSS = `
body { font-family: Georgia, 'Times New Roman', serif; }
.header { text-align: center; }
.header .name { font-variant: small-caps; }
.header .contact { color: #333; }
.section > h2 { text-align: center; border-bottom: 2px double #333; color: #111; }
.skills li::after { content: ","; }
.skills li:last-child::after { content: ""; }
`

const creativeCSS = `
.resume { display: flex; min-height: 100%; }
.sidebar {
  width: 32%;
  background: #203040;
  color: #e8ecf2;
  padding: 22px 16px;
}
.sidebar .name { font-size: 17pt; font-weight: 700; color: #fff; }
.sidebar .section > h2 { color: #8fb8e8; border-bottom-color: #3a4d63; }
.sidebar .contact { color: #b9c3d1; font-size: 9pt; }
.sidebar .contact div { margin-bottom: 3px; }
.sidebar a { color: #8fb8e8; text-decoration: none; display: block; margin-bottom: 3px; }
.sidebar .skills li { display: block; margin: 0 0 4px; }
.main { width: 68%; padding: 22px 20px; }
.main .section > h2 { color: #203040; border-bottom-color: #203040; }
.photo { margin-bottom: 10px; }
`

const minimalCSS = `
body { font-weight: 300; color: #2b2b2b; }
.header .name { font-weight: 400; letter-spacing: 2px; }
.section > h2 { font-size: 9.5pt; letter-spacing: 2.5px; color: #6b7280; border-bottom: none; }
.entry .title { font-weight: 500; }
.skills li + li::before { content: "\00b7"; margin-right: 8px; color: #9aa1ad; }
`
